// Package mapping converts pilot records from external ship files into the
// game's card schema.
//
// Only limited (unique) pilots become cards. The mapping is driven by Rules,
// which hold every game-balance and naming table so they can be changed in
// configuration without touching the conversion:
//
//	id          Compact(name) + id suffix        "Han Solo" -> "hansolo-ability"
//	type        sensitive type if "force" is set, default type otherwise
//	cost        initiative * cost multiplier of the type
//	faction     faction table lookup, unknown tokens pass through
//	description "ability", falling back to "text"
//	image       "artwork", falling back to "image"
//	energy      charges.value, only when present
//	recurring   charges.recovers, only when positive
//
// # Source document
//
//	{
//	  "faction": "rebelalliance",
//	  "pilots": [
//	    {"name": "Han Solo", "limited": 1, "initiative": 5, "force": {"value": 1}}
//	  ]
//	}
//
// A pilot may carry its own "faction", which overrides the document's.
package mapping
