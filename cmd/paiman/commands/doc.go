// Package commands implements the paiman CLI.
//
// The CLI assembles the controller graph headlessly: `run` walks the entry
// screen, the overview and the add-painting dialog against the headless web
// view, `graph` prints the assembled controllers with their scopes and inputs.
package commands
