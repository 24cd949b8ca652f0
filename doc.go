/*
Package abnf is a parser for grammars written in Augmented BNF.

ABNF is the grammar-meta-language standardised in RFC 5234. This module
reads ABNF rule definitions and produces a typed abstract syntax tree,
suitable for grammar-driven code generation or interpretation.
Package structure is as follows:

■ chars: Package chars implements the RFC 5234 core rules (ALPHA, DIGIT,
HEXDIG, …) as character-class predicates and low-level byte advancers.

■ parser: Package parser implements the recursive-descent advancers for the
ABNF meta-grammar. Advancers report their progress to a client-provided
parse context, a bundle of structured callbacks.

■ ast: Package ast implements a parse context which assembles a typed
syntax tree, together with a depth-first traversal API and a canonical
grammar writer.

The base package contains data types which are used throughout all the
other packages, most notably the position-tracking input cursor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package abnf
