// Package harness runs scripted scenarios against a contact store and its
// contacts file, recording a trace that can be compared with a golden file.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: round_trip
//	description: "Saved contacts load back in order"
//	file: |
//	  Name: Ada
//	  Number: 555-0100
//	steps:
//	  - op: add
//	    name: Bob
//	    phone: 555-0200
//	    expect: { outcome: ok, count: 2 }
//	  - op: save
//	  - op: clear
//	  - op: load
//	    expect: { outcome: ok, count: 2 }
//	assertions:
//	  - type: contacts
//	    contacts:
//	      - { name: Ada, phone: "555-0100" }
//	      - { name: Bob, phone: "555-0200" }
//
// The optional file block is written to the scenario's contacts file before
// the first step. Each step runs one operation; its expect clause is checked
// right away. Assertions run once all steps are done.
//
// # Operations
//
//   - add, edit (name, phone)
//   - delete, find (name)
//   - search (query)
//   - save, load, clear
//   - write_file (content): overwrite the contacts file directly
//
// # Assertion Types
//
//   - contacts: the store holds exactly these contacts, in order
//   - file: the contacts file holds exactly this content
//   - count: the store holds exactly this many contacts
//
// # Determinism
//
// Every scenario runs in its own directory with a fresh store, and trace
// lines name the contacts file by its base name only, so traces are
// byte-for-byte reproducible for golden comparison.
package harness
