// Package embed turns a SABnzbd event into a Discord embed document.
//
// Formatting is a pure transformation: the event kind selects a
// presentation from the events table, structured "key: value" lines are
// lifted out of the free-text message into the Category and Download Status
// fields, and the remaining text becomes the description. Nothing here
// performs I/O, so callers can format, inspect, and validate payloads
// without touching the network.
package embed
