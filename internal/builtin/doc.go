// Package builtin provides the command set the cmdtree console ships with.
//
// Register adds the commands and their aliases to a registry:
//
//	help [command]                 catalog table, or details of one command
//	commands                       usage listing
//	say <message>                  print a message
//	msg <user:users> <message>     message a roster user
//	calc add|mul <a> <b>           integer arithmetic (alias: calc plus)
//	context use <name:contexts>    switch context (alias: context switch)
//	context show                   show the current context
//	roster list|reload             inspect or re-read the roster
//	tree [format]                  dump the catalog as table, console, yaml or json
//	exit                           leave the console
//
// Sources returns the "users" and "contexts" completion sources the
// parameter declarations above refer to.
package builtin
