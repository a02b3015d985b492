// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-16

// Package main is the entry point for the triage CLI and GitHub Action.
package main

import "github.com/similigh/triage-bot/cmd/triage/commands"

func main() {
	commands.Execute()
}
