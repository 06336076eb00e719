// Package script lets hosts express extra admission rules in Lua.
//
// A rule is a Lua chunk defining a single predicate:
//
//	function admit(value, selection, input)
//	    return tonumber(value .. input) ~= nil
//	end
//
// The predicate receives the control's current value, the resolved
// selection length, and the content the operation would insert, and
// returns a truthy value to admit. Rules plug into the dispatcher and are
// only consulted on the admit path, so Lua can narrow admission but never
// bypass the built-in checks.
//
// The Lua state is sandboxed: the chunk cannot load code from disk, and
// every evaluation is serialized since gopher-lua states are not
// goroutine-safe. An evaluation error counts as rejection.
package script
