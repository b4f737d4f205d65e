package main

import "github.com/mytheresa/product-categories/cmd"

func main() {
	cmd.Execute()
}
