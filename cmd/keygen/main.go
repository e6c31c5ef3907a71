// Command keygen generates an RSA key pair and writes each half to disk as
// a self-describing, base64-encoded container.
package main

func main() {
	Execute()
}
