package main

import "github.com/codewarden/codewarden/cmd/codewarden"

func main() { codewarden.Execute() }
