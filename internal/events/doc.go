// Package events classifies SABnzbd notification types.
//
// SABnzbd passes a short type tag (download, complete, failed, ...) as the
// first argument to notification scripts. This package owns the static table
// that maps each tag to the label, emoji, and accent color shown in Discord,
// plus the graceful fallback for tags the table does not know about.
package events
