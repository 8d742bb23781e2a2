package allow

func shift(x int) int {
	return x << 8
}

func stillFlagged() int {
	return 7 // want `magic number 7; extract it into a named constant`
}
