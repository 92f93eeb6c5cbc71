package db

var defaultPaymentTypes = []struct {
	code  string
	label string
}{
	{"CASH", "Cash"},
	{"CREDIT_CARD", "Credit Card"},
	{"DEBIT_CARD", "Debit Card"},
	{"UPI", "UPI"},
	{"NET_BANKING", "Net Banking"},
}

var defaultCategories = []struct {
	label         string
	subCategories []string
}{
	{"Food", []string{"Groceries", "Restaurants", "Snacks"}},
	{"Housing", []string{"Rent", "Maintenance", "Utilities"}},
	{"Transport", []string{"Fuel", "Public Transport", "Taxi"}},
	{"Health", []string{"Medicine", "Insurance", "Doctor"}},
	{"Entertainment", []string{"Subscriptions", "Movies", "Travel"}},
}
