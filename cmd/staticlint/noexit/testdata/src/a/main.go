package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("start")
	os.Exit(1) // want "вызов os.Exit в функции main запрещён"
}

func helper() {
	os.Exit(2)
}
