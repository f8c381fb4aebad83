// Command ladle is the terminal front end for the recipe browser.
//
// It plays the role of the presentation layer: it loads configuration, opens
// the favorites store, and drives the browse engine with filters taken from
// flags or from the voice-style grammar of the say command. The core
// packages under internal/ carry all semantics; this package only renders.
package main
