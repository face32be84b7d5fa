// Package compat converts between the syntax-preserving AST of package
// graphql/ast and the community AST of
// github.com/graphql-go/graphql/language/ast.
//
// The two ASTs are not equivalent, and the conversion is lossy in both
// directions. Every loss is deliberate and enumerated here; nothing is
// dropped silently beyond this list.
//
//  1. Syntax detail (tokens, trivia, delimiter pairs) is dropped going
//     out. Reverse conversion leaves every Syntax record nil and every
//     string value with Block false: graphql-go does not record whether
//     a string used the `"""` form.
//  2. graphql-go locations carry only byte offsets. Reverse conversion
//     without source text produces zero-width spans at the origin with
//     no UTF-16 column; FromGraphQLGoWithSource recomputes full
//     positions from the offsets.
//  3. Object value fields keep their source order in both directions.
//  4. graphql-go has no schema extensions and only object type
//     extensions. Converting any other extension records a diagnostic
//     and omits it; the rest of the document still converts.
//  5. Variable-definition directives have no field on the target: they
//     are dropped going out and always empty coming back.
//  6. `repeatable` on directive definitions is dropped going out and
//     always false coming back.
//  7. Descriptions on operation, fragment, and schema definitions have
//     no field on the target and are dropped going out.
//  8. Int literals out of int32 range cannot occur going out. Coming
//     back, graphql-go stores numeric literals as raw text, so
//     malformed or out-of-range literals record a diagnostic and leave
//     the value slot nil.
//  9. graphql-go cannot represent `null` literals. Going out, each one
//     records a diagnostic and leaves its value slot nil; list items
//     are dropped rather than left as holes.
//  10. `implements` on interface definitions has no field on the
//     target: dropped going out, always empty coming back. Object
//     `implements` clauses survive.
//  11. graphql-go stores operation types and directive locations as
//     free strings. Coming back, unknown values record a diagnostic
//     and the affected definition or location is omitted.
//
// Both directions convert as much as they can: a non-empty diagnostics
// result accompanies a usable document, not a nil one.
package compat
