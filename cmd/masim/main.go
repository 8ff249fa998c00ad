// Command masim runs package atmosphere simulations from scenario files.
package main

func main() {
	Execute()
}
