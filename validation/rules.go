package validation

type check struct {
	tag     string
	message string
}

type field struct {
	name       string
	attachment bool
	// fallback replaces a blank value before the checks run.
	fallback string
	checks   []check
}

const (
	RoleUser            = "USER"
	RoleRestaurantOwner = "RESTAURANT_OWNER"
)

var (
	emailChecks = []check{
		{"required", "Email is required."},
		{"company_email", "Email must end with @nucleusteq.com."},
	}
	passwordChecks = []check{
		{"required", "Password is required."},
		{"strong_password", "Password must be at least 6 characters long and include at least one uppercase letter, one digit, and one special character."},
	}
)

func nameChecks(label string) []check {
	return []check{
		{"required", label + " is required."},
		{"person_name", "Name must start with a capital letter and be at least three characters long."},
	}
}

func mobileChecks(label string) []check {
	return []check{
		{"required", label + " is required."},
		{"mobile_number", "Phone number must start with 9, 8, 7, or 6 and contain 10 digits."},
	}
}

var foodItemFields = []field{
	{name: "foodItemName", checks: []check{
		{"required", "Food item name is required"},
		{"letters_spaces", "Food item name must contain only alphabets and cannot include numbers"},
	}},
	{name: "description", checks: []check{
		{"required", "Description is required"},
	}},
	{name: "price", checks: []check{
		{"required", "Price is required"},
		{"positive_number", "Price must be a valid positive number"},
		{"max_price", "Price cannot exceed 99999999.99"},
	}},
}

var ruleTable = map[Kind][]field{
	KindLogin: {
		{name: "email", checks: emailChecks},
		{name: "password", checks: passwordChecks},
	},
	KindRegistration: {
		{name: "firstName", checks: nameChecks("First name")},
		{name: "lastName", checks: nameChecks("Last name")},
		{name: "email", checks: emailChecks},
		{name: "password", checks: passwordChecks},
		{name: "phoneNo", checks: mobileChecks("Phone number")},
		{name: "role", fallback: RoleUser, checks: []check{
			{"oneof=" + RoleUser + " " + RoleRestaurantOwner, "Role must be either USER or RESTAURANT_OWNER."},
		}},
	},
	KindRestaurant: {
		{name: "restaurantName", checks: []check{
			{"required", "Restaurant name cannot be blank"},
			{"restaurant_name", "Restaurant name must contain at least two alphabets and can include numbers"},
		}},
		{name: "restaurantAddress", checks: []check{
			{"required", "Address cannot be blank"},
		}},
		{name: "contactNumber", checks: mobileChecks("Contact number")},
		{name: "description", checks: []check{
			{"required", "Description cannot be blank"},
			{"max=255", "Description cannot exceed 255 characters"},
		}},
		{name: "restaurantImage", attachment: true, checks: []check{
			{"required", "Restaurant image is required"},
		}},
	},
	KindFoodCategory: {
		{name: "foodCategoryName", checks: []check{
			{"required", "Food category name cannot be blank"},
			{"max=100", "Food category name cannot exceed 100 characters"},
			{"category_name", "Category name must contain at least two alphabets and cannot include numbers"},
		}},
	},
	KindFoodItem: append(append([]field{}, foodItemFields...), field{
		name: "foodItemImage", attachment: true, checks: []check{
			{"required", "Please upload image"},
		},
	}),
	KindFoodItemUpdate: foodItemFields,
	KindAddress: {
		{name: "street", checks: []check{
			{"required", "Street is required"},
			{"min=4,max=100", "Street must be between 4 and 100 characters"},
		}},
		{name: "city", checks: []check{
			{"required", "City is required"},
			{"min=3,max=50", "City must be between 3 and 50 characters"},
			{"alpha", "City must contain only alphabets"},
		}},
		{name: "state", checks: []check{
			{"required", "State is required"},
			{"min=2,max=50", "State must be between 2 and 50 characters"},
			{"letters_spaces", "State must contain only alphabets and spaces"},
		}},
		{name: "country", checks: []check{
			{"required", "Country is required"},
			{"max=50", "Country cannot exceed 50 characters"},
			{"alpha", "Country must contain only alphabets"},
		}},
		{name: "pinCode", checks: []check{
			{"required", "Pin code is required"},
			{"pin_code", "Pin code must be exactly 6 digits"},
		}},
	},
	KindContactMessage: {
		{name: "subject", checks: []check{
			{"required", "Subject is required."},
			{"min=1,max=100", "Subject must be between 1 and 100 characters."},
		}},
		{name: "message", checks: []check{
			{"required", "Text is required."},
			{"min=1,max=500", "Text must be between 1 and 500 characters."},
		}},
	},
}
