package contact

// Contact is a name and phone number pair.
//
// The name is fixed at creation. The phone number can only be changed
// through Store.EditPhone. Contacts compare by value with Equal; there is
// deliberately no ordering between contacts.
type Contact struct {
	name  string
	phone string
}

// New creates a contact. Neither field is validated.
func New(name, phone string) Contact {
	return Contact{name: name, phone: phone}
}

// Name returns the contact's name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact's phone number.
func (c Contact) Phone() string {
	return c.phone
}

// Equal reports whether both name and phone number match.
func (c Contact) Equal(other Contact) bool {
	return c.name == other.name && c.phone == other.phone
}

// String renders the contact the way the menu lists it.
func (c Contact) String() string {
	return "Name: " + c.name + ", Phone: " + c.phone
}
