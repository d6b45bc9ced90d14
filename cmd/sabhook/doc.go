// Package main hosts the sabhook CLI entrypoint and command graph.
//
// SABnzbd runs notification scripts as `script <type> <title> <message>
// [urls]`, so the root command itself is the delivery path: it loads
// configuration, formats a Discord embed, posts it once, and exits with a
// code describing the outcome. Subcommands cover configuration scaffolding,
// offline previews of the embed, and a test notification.
//
// Diagnostics go to stderr through the logging package; stdout only ever
// carries payloads and command output.
package main
