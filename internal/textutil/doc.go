// Package textutil holds small string helpers shared by the CLI commands.
package textutil
