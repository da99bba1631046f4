// Package custom provides the custom-script rule, which runs a user-supplied
// Starlark function against each document.
//
// A script defines check(doc) and returns a list of dicts:
//
//	def check(doc):
//	    out = []
//	    for span in find_all(r"\bsynergy\b", doc.text):
//	        out.append({"severity": "WARN", "message": "buzzword", "start": span[0], "end": span[1]})
//	    return out
//
// doc has the fields path, text, raw and metadata. The predeclared helpers
// words, sentences, find_all and per_thousand expose the same tokenizer and
// matching used by the built-in rules, and config holds the rule's entry from
// contentlint.yaml. Offsets are byte offsets into doc.text.
package custom
