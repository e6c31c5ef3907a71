// Command symcrypt encrypts or decrypts a file under a password-based
// AES container: the SHA-256 hex digest of the password doubles as both
// the AES key material and a password-check tag.
package main

func main() {
	Execute()
}
