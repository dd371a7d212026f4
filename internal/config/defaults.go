package config

// Default returns the built-in configuration. A YAML file only needs to
// specify the sections it wants to override.
func Default() *Config {
	return &Config{
		Timezone:      "Asia/Kolkata",
		BaseCurrency:  "INR",
		USDToBaseRate: 83.0,
		Columns: Columns{
			Date:        []string{"Date", "Transaction Date", "Posting Date", "Txn Date", "Value Date"},
			Description: []string{"Description", "Details", "Narration", "Merchant", "Remarks", "Transaction Description", "Particulars", "Info"},
			Amount:      []string{"Amount", "Amt", "Txn Amount", "Transaction Amount", "Value", "AMOUNT"},
			Debit:       []string{"Debit", "Withdrawal", "DR", "Debited"},
			Credit:      []string{"Credit", "Deposit", "CR", "Credited"},
			Currency:    []string{"Currency", "Curr"},
			Type:        []string{"Type", "Transaction Type", "Dr/Cr"},
		},
		Categories: []CategoryRule{
			{Name: "Food", Keywords: []string{"swiggy", "zomato", "restaurant", "cafe", "eatfit", "food", "domino", "pizza", "kfc", "mcd"}},
			{Name: "Transport", Keywords: []string{"uber", "ola", "rapido", "fuel", "petrol", "diesel", "metro", "bus", "train", "cab", "toll"}},
			{Name: "Shopping", Keywords: []string{"amazon", "flipkart", "myntra", "ajio", "shop", "store", "decathlon"}},
			{Name: "Housing", Keywords: []string{"rent", "security deposit", "landlord", "society"}},
			{Name: "Utilities", Keywords: []string{"electricity", "water", "gas", "internet", "wifi", "broadband", "mobile", "recharge", "dth"}},
			{Name: "Entertainment", Keywords: []string{"netflix", "prime video", "spotify", "movie", "bookmyshow", "gaming"}},
			{Name: "Health", Keywords: []string{"pharmacy", "medicine", "apollo", "lab", "hospital", "clinic"}},
			{Name: "Education", Keywords: []string{"udemy", "coursera", "course", "exam", "college", "school", "byjus"}},
			{Name: "Travel", Keywords: []string{"air", "indigo", "vistara", "goair", "train", "irctc", "hotel", "booking.com", "makemytrip", "yatra", "oyo"}},
			{Name: "Groceries", Keywords: []string{"bigbasket", "jiomart", "grofer", "dmart", "grocery", "milk", "vegetable", "fruit"}},
			{Name: "Subscriptions", Keywords: []string{"subscription", "renewal", "membership", "license"}},
			{Name: "Transfers", Keywords: []string{"transfer", "upi to", "imps", "neft", "rtgs", "paytm wallet", "to self", "wallet"}},
			{Name: "Income", Keywords: []string{"salary", "stipend", "refund", "cashback", "reversal", "interest"}},
			{Name: "Others", Keywords: []string{}},
		},
		Budgets: map[string]float64{
			"Food":          6000,
			"Transport":     2500,
			"Shopping":      4000,
			"Housing":       10000,
			"Utilities":     3000,
			"Entertainment": 2000,
			"Health":        2000,
			"Education":     2000,
			"Travel":        5000,
			"Groceries":     6000,
			"Subscriptions": 1500,
			"Others":        3000,
		},
	}
}
