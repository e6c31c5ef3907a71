// Command aestest is a small diagnostic harness that exercises the AES
// block cipher and SHA-256 implementations directly, outside of the
// hybrid and symmetric file containers: encrypt/decrypt a hex block
// under a hex key, or hash an input string, and print the hex result.
package main

func main() {
	Execute()
}
