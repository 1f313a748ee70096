// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Engine Function Identifiers - these constants define the required global function signatures for Lua engine modules.
const (
	SearchVerbsFn   = "SearchVerbs"
	ConjugateVerbFn = "ConjugateVerb"
)

// EngineTemplate is a Go text/template for scaffolding new Lua engine files.
const EngineTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias verb { dictionary: string, reading: string, romaji: string|nil, class: string, meanings: string|table|nil }
---@alias form { name: string, value: string, reading: string|nil, romaji: string|nil }
---@alias category { name: string, forms: form[] }


----- IMPORTS -----
--- END IMPORTS ---



----- VARIABLES -----
--- END VARIABLES ---



----- MAIN -----

--- Searches for verbs matching the given query.
-- @param query string Query to search for
-- @return verb[] Table of verbs
function {{ .SearchVerbsFn }}(query)
	return {}
end


--- Produces the full conjugation table for a verb.
-- @param dictionary string Dictionary form of the verb
-- @return category[] Table of grammatical categories with their forms
function {{ .ConjugateVerbFn }}(dictionary)
	return {}
end


--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
