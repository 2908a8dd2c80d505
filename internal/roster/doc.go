// Package roster keeps the list of users the console can address, backed by
// a YAML file that is reloaded when it changes on disk.
//
// The roster doubles as the "users" completion source of the console.
package roster
