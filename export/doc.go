// Package export renders decoded tag trees for people and other tools.
//
// Every format keeps compound entry order. JSON and YAML are meant for
// reading and diffing, CBOR for handing a tree to another program without
// losing integer and float widths, and Text for a quick look at the shape
// of a file.
package export
