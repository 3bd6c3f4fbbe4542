// Package textfile persists a contact list as line-oriented text.
//
// Each contact takes exactly two lines, in list order:
//
//	Name: <name>
//	Number: <phone number>
//
// Values are written verbatim. Nothing is escaped, so a name or number that
// contains a newline produces a file that will not load back the same way.
// Lines end at '\n' alone: a carriage return is kept as part of the value,
// so files written with CRLF endings load with a trailing '\r' on each
// value. Lines have no length limit.
//
// # Loading
//
// Load clears the destination list and then reads line pairs until the end
// of the file or the first pair that does not match the two prefixes. In
// the latter case the contacts read so far are kept and a *MalformedError
// is returned alongside the count. A file that cannot be opened yields an
// *OpenError and leaves the destination untouched.
package textfile
