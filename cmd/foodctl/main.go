package main

import "github.com/Lixing-Zhang/food-dashboard/internal/cli"

func main() {
	cli.Execute()
}
