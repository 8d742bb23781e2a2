package main

import "fmt"

func main() {
	fmt.Println("hello") // package main is exempt by default
}
