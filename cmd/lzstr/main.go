// Command lzstr compresses text into printable, escape-safe envelopes and
// compares the result with general-purpose byte codecs.
package main

func main() {
	Execute()
}
