// Package preflight inspects the files sabhook and SABnzbd depend on and
// reports problems that would otherwise surface as confusing script errors.
//
// Checks never abort a run. The CLI logs failed results as warnings before
// delivering, and "sabhook config validate" prints them as a table.
package preflight
