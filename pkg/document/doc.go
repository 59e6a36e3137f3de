// Package document decodes declarative YAML page descriptions into
// renderable markup trees.
//
// A page is a single YAML node. Scalars become leaves, sequences become
// fragments and mappings describe elements or special leaves:
//
//	# pages/index.yaml
//	- doctype: true
//	- tag: html
//	  attrs:
//	    lang: en
//	  children:
//	    - tag: head
//	      children:
//	        - tag: meta
//	          void: true
//	          attrs: {charset: utf-8}
//	        - tag: title
//	          children: Home
//	    - tag: body
//	      children:
//	        - tag: input
//	          void: true
//	          attrs:
//	            type: checkbox
//	            checked: true
//	        - markdown: |
//	            # Welcome
//	        - raw: <hr>
//	        - 42
//
// Attributes render in the order they are written. A true value produces a
// bare boolean attribute and false or null omits the attribute. To repeat an
// attribute name, write attrs as a sequence of single-entry mappings.
//
// Documents have no control flow: they describe exactly one tree.
package document
