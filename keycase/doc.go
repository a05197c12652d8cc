// Package keycase converts the key naming convention of decoded JSON trees.
//
// Messaging platform APIs speak snake_case on the wire while this library
// exposes camelCase on its public surface. The conversion is deep and
// non-mutating: mappings are rewritten key by key, sequences element-wise,
// and everything else passes through untouched.
//
// # Conversion Rules
//
// snake_case to camelCase splits a key on underscore runs. The first
// non-empty segment is emitted as-is. An interior run gives up one
// underscore as the capitalization boundary of the following segment; extra
// underscores survive as literals. A run that cannot capitalize what
// follows (a digit, an uppercase letter, the end of the key) survives
// whole, as do leading runs:
//
//	user_id   -> userId
//	a__b      -> a_B
//	_id       -> _id
//	id_       -> id_
//	image_72  -> image_72
//
// camelCase to snake_case treats every uppercase ASCII letter as a fresh
// word boundary: an underscore is inserted before it (except at position 0)
// and the letter is lower-cased. Acronyms are not grouped:
//
//	userId    -> user_id
//	URLPath   -> u_r_l_path
//
// Both directions are idempotent and total; keys with no case boundaries
// pass through unchanged. Inputs must be acyclic.
//
// # Opaque Values
//
// Binary payloads must never be traversed. []byte, json.RawMessage, and
// values wrapped in Opaque are returned with their identity preserved, even
// when nested inside a converted mapping.
package keycase
