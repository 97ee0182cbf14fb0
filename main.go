/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "groupgen/cmd"

func main() {
	cmd.Execute()
}
