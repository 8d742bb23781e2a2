package a

import "fmt"

func report(msg string) {
	fmt.Println(msg)              // want `direct console output via fmt.Println; write to a logger instead`
	fmt.Printf("msg: %s\n", msg)  // want `direct console output via fmt.Printf; write to a logger instead`
	fmt.Print(msg)                // want `direct console output via fmt.Print; write to a logger instead`
	println(msg)                  // want `direct console output via builtin println; write to a logger instead`
	_ = fmt.Sprintf("ok %s", msg) // Sprintf does not write to stdout
	_ = fmt.Errorf("bad %s", msg)
}
