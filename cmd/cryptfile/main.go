// Command cryptfile encrypts or decrypts a file under a hybrid
// AES-256+RSA container: a fresh AES-256 key wrapped with RSA, framed
// as length || wrapped_key || ciphertext.
package main

func main() {
	Execute()
}
