// Package cmdtree routes space separated command lines through a namespace
// tree and binds the remaining tokens to named parameters.
//
// # Namespace
//
// A Tree holds Branch, Command and Alias nodes in an arena. Branches own
// children by unique name; commands and aliases are leaves. Walk descends one
// token per level by exact name and stops at the first command, handing the
// remaining tokens over as that command's raw arguments.
//
// # Registration
//
// Commands are declared with strings such as
//
//	teleport <player:players> [target]
//
// Leading plain tokens are sections forming the path. "<name>" is a required
// parameter and "[name]" an optional one; ":source" names the completion
// source for the parameter. Required parameters may not follow optional ones.
//
//	r := cmdtree.NewRegistry()
//	r.MustRegister("say <message>", cmdtree.HandlerFunc(say), "Broadcast a message")
//
// # Binding
//
// Tokens bind to parameters one each in declared order, and any surplus is
// joined onto the last parameter, so "say hello there" binds message to
// "hello there". Dispatch binds strictly; Complete tolerates missing
// required values.
//
// # Dispatch and completion
//
// Registry.Dispatch reports a path that reaches no command, missing required
// arguments and *ExecutionError failures to the registry's ErrorHandler.
// Registry.Complete lists child names when the cursor is on a section and
// delegates to a CompletionSource when it is on a parameter.
package cmdtree
