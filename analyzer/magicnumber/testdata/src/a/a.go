package a

const timeoutSeconds = 30

var bufSize = 4096 // package-level var is outside any function body

func retries() int {
	return 3 // want `magic number 3; extract it into a named constant`
}

func scale(x float64) float64 {
	return x * 1.5 // want `magic number 1.5; extract it into a named constant`
}

func allowedValues() int {
	a := 0
	a += 1
	return a
}

func arrayLength() [16]byte {
	var buf [16]byte
	return buf
}

func named() int {
	return timeoutSeconds
}
