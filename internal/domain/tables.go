package domain

var Tables = []interface{}{
	// Catalog
	&Product{},
	// Contact
	&ContactMessage{},
	&ContactLog{},
	// Accounts
	&Admin{},
	&User{},
}
