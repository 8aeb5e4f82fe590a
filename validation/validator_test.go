package validation

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecords() map[Kind]Record {
	return map[Kind]Record{
		KindLogin: {"email": "a.b@nucleusteq.com", "password": "Abcdef1!"},
		KindRegistration: {
			"firstName": "John", "lastName": "Doe", "email": "john.doe@nucleusteq.com",
			"password": "Secret1!", "phoneNo": "9123456780", "role": "USER",
		},
		KindRestaurant: {
			"restaurantName": "Spice Route 22", "restaurantAddress": "12 MG Road, Indore",
			"contactNumber": "9876543210", "description": "North Indian thalis",
			"restaurantImage": true,
		},
		KindFoodCategory: {"foodCategoryName": "Fast Food"},
		KindFoodItem: {
			"foodItemName": "Paneer Tikka", "description": "Grilled cottage cheese",
			"price": "150", "foodItemImage": []byte{0xff, 0xd8},
		},
		KindFoodItemUpdate: {"foodItemName": "Paneer Tikka", "description": "Grilled", "price": 150.5},
		KindAddress: {
			"street": "221B Baker Street", "city": "Indore", "state": "Madhya Pradesh",
			"country": "India", "pinCode": "560001",
		},
		KindContactMessage: {"subject": "Late delivery", "message": "My order arrived cold."},
	}
}

func with(kind Kind, field string, value any) Record {
	rec := Record{}
	for k, v := range validRecords()[kind] {
		rec[k] = v
	}
	if value == nil {
		delete(rec, field)
	} else {
		rec[field] = value
	}
	return rec
}

func TestValidate_ValidRecords(t *testing.T) {
	for kind, rec := range validRecords() {
		t.Run(string(kind), func(t *testing.T) {
			errs := Validate(kind, rec)
			assert.Empty(t, errs)
			assert.True(t, errs.Valid())
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	rec := Record{"email": "bad", "password": "weak"}
	first := Validate(KindLogin, rec)
	second := Validate(KindLogin, rec)
	assert.Equal(t, first, second)
	assert.Equal(t, Record{"email": "bad", "password": "weak"}, rec, "record must not be mutated")
}

func TestValidate_ConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Empty(t, Validate(KindRegistration, validRecords()[KindRegistration]))
		}()
	}
	wg.Wait()
}

func TestValidate_Email(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"a.b@nucleusteq.com", ""},
		{"A_B+tag%1@NucleusTeq.COM", ""},
		{"  a.b@nucleusteq.com  ", ""},
		{"a.b@gmail.com", "Email must end with @nucleusteq.com."},
		{"@nucleusteq.com", "Email must end with @nucleusteq.com."},
		{"a b@nucleusteq.com", "Email must end with @nucleusteq.com."},
		{"a.b@nucleusteq.com.evil", "Email must end with @nucleusteq.com."},
		{"", "Email is required."},
		{"   ", "Email is required."},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			errs := Validate(KindLogin, with(KindLogin, "email", tt.email))
			if tt.want == "" {
				assert.NotContains(t, errs, "email")
			} else {
				assert.Equal(t, tt.want, errs["email"])
			}
		})
	}
}

func TestValidate_Password(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Abcdef1!", true},
		{"A1!a(b)", true},
		{"abcdef1!", false},
		{"Abc1!", false},
		{"Abcdefg!", false},
		{"Abcdef12", false},
		{"Abcdef1?", false},
		{"Abcdéf1!", false},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			errs := Validate(KindRegistration, with(KindRegistration, "password", tt.password))
			if tt.valid {
				assert.NotContains(t, errs, "password")
			} else {
				assert.Contains(t, errs["password"], "at least 6 characters")
			}
		})
	}
}

func TestValidate_MissingFieldIsRequiredFailure(t *testing.T) {
	errs := Validate(KindLogin, Record{})
	assert.Equal(t, Errors{
		"email":    "Email is required.",
		"password": "Password is required.",
	}, errs)

	assert.Equal(t, "Email is required.", Validate(KindLogin, Record{"email": nil, "password": "Abcdef1!"})["email"])
}

func TestValidate_PhoneNumbers(t *testing.T) {
	for _, phone := range []string{"9876543210", "6000000000", "7123456789", "8123456789"} {
		assert.NotContains(t, Validate(KindRegistration, with(KindRegistration, "phoneNo", phone)), "phoneNo", phone)
		assert.NotContains(t, Validate(KindRestaurant, with(KindRestaurant, "contactNumber", phone)), "contactNumber", phone)
	}
	for _, phone := range []string{"5876543210", "987654321", "98765432101", "98765a3210"} {
		assert.Equal(t, "Phone number must start with 9, 8, 7, or 6 and contain 10 digits.",
			Validate(KindRegistration, with(KindRegistration, "phoneNo", phone))["phoneNo"], phone)
		assert.Equal(t, "Phone number must start with 9, 8, 7, or 6 and contain 10 digits.",
			Validate(KindRestaurant, with(KindRestaurant, "contactNumber", phone))["contactNumber"], phone)
	}
	assert.Equal(t, "Contact number is required.", Validate(KindRestaurant, with(KindRestaurant, "contactNumber", " "))["contactNumber"])
}

func TestValidate_RegistrationNames(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"John", ""},
		{"Ann", ""},
		{"McDonald", ""},
		{"Jo", "Name must start with a capital letter and be at least three characters long."},
		{"john", "Name must start with a capital letter and be at least three characters long."},
		{"J0hn", "Name must start with a capital letter and be at least three characters long."},
		{"Mary Ann", "Name must start with a capital letter and be at least three characters long."},
		{"", "First name is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(KindRegistration, with(KindRegistration, "firstName", tt.name))
			if tt.want == "" {
				assert.NotContains(t, errs, "firstName")
			} else {
				assert.Equal(t, tt.want, errs["firstName"])
			}
		})
	}
	assert.Equal(t, "Last name is required.", Validate(KindRegistration, with(KindRegistration, "lastName", nil))["lastName"])
}

func TestValidate_RegistrationRole(t *testing.T) {
	assert.Empty(t, Validate(KindRegistration, with(KindRegistration, "role", nil)), "missing role defaults to USER")
	assert.Empty(t, Validate(KindRegistration, with(KindRegistration, "role", "")))
	assert.Empty(t, Validate(KindRegistration, with(KindRegistration, "role", "RESTAURANT_OWNER")))
	assert.Equal(t, "Role must be either USER or RESTAURANT_OWNER.",
		Validate(KindRegistration, with(KindRegistration, "role", "ADMIN"))["role"])
}

func TestValidate_RegistrationScenario(t *testing.T) {
	errs := Validate(KindRegistration, Record{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john.doe@nucleusteq.com",
		"password":  "Secret1!",
		"phoneNo":   "9123456780",
		"role":      "USER",
	})
	assert.Empty(t, errs)
}

func TestValidate_AllFailingFieldsReportedTogether(t *testing.T) {
	errs := Validate(KindRegistration, Record{
		"firstName": "jo",
		"lastName":  "",
		"email":     "jo@gmail.com",
		"password":  "short",
		"phoneNo":   "123",
	})
	assert.Equal(t, []string{"email", "firstName", "lastName", "password", "phoneNo"}, errs.Fields())
}

func TestValidate_RestaurantName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Spice Route 22", ""},
		{"AB", ""},
		{"  Cafe 9  ", ""},
		{"12345", "Restaurant name must contain at least two alphabets and can include numbers"},
		{"A1", "Restaurant name must contain at least two alphabets and can include numbers"},
		{"Cafe & Bar", "Restaurant name must contain at least two alphabets and can include numbers"},
		{"   ", "Restaurant name cannot be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(KindRestaurant, with(KindRestaurant, "restaurantName", tt.name))
			if tt.want == "" {
				assert.NotContains(t, errs, "restaurantName")
			} else {
				assert.Equal(t, tt.want, errs["restaurantName"])
			}
		})
	}
}

func TestValidate_RestaurantDescriptionAndImage(t *testing.T) {
	assert.NotContains(t, Validate(KindRestaurant, with(KindRestaurant, "description", strings.Repeat("x", 255))), "description")
	assert.Equal(t, "Description cannot exceed 255 characters",
		Validate(KindRestaurant, with(KindRestaurant, "description", strings.Repeat("x", 256)))["description"])
	assert.Equal(t, "Description cannot be blank",
		Validate(KindRestaurant, with(KindRestaurant, "description", "\t"))["description"])
	assert.Equal(t, "Address cannot be blank",
		Validate(KindRestaurant, with(KindRestaurant, "restaurantAddress", " "))["restaurantAddress"])

	for _, missing := range []any{nil, false, []byte{}, ""} {
		rec := with(KindRestaurant, "restaurantImage", nil)
		if missing != nil {
			rec["restaurantImage"] = missing
		}
		assert.Equal(t, "Restaurant image is required", Validate(KindRestaurant, rec)["restaurantImage"])
	}
}

func TestValidate_FoodCategoryName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Fast Food", ""},
		{"Desserts", ""},
		{" South Indian Meals ", ""},
		{"Fast Food2", "Category name must contain at least two alphabets and cannot include numbers"},
		{"Fast  Food", "Category name must contain at least two alphabets and cannot include numbers"},
		{"A", "Category name must contain at least two alphabets and cannot include numbers"},
		{"Fast F", "Category name must contain at least two alphabets and cannot include numbers"},
		{"", "Food category name cannot be blank"},
		{strings.Repeat("a", 101), "Food category name cannot exceed 100 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(KindFoodCategory, Record{"foodCategoryName": tt.name})
			if tt.want == "" {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, tt.want, errs["foodCategoryName"])
			}
		})
	}
	assert.Empty(t, Validate(KindFoodCategory, Record{"foodCategoryName": strings.Repeat("a", 100)}))
}

func TestValidate_FoodItemPrice(t *testing.T) {
	tests := []struct {
		price any
		want  string
	}{
		{"150", ""},
		{"0.5", ""},
		{" 99.99 ", ""},
		{150, ""},
		{12.5, ""},
		{"0.006", ""},
		{"99999999.99", ""},
		{"0", "Price must be a valid positive number"},
		{"0.004", "Price must be a valid positive number"},
		{0.001, "Price must be a valid positive number"},
		{"1e12", "Price cannot exceed 99999999.99"},
		{"100000000", "Price cannot exceed 99999999.99"},
		{0, "Price must be a valid positive number"},
		{"-3", "Price must be a valid positive number"},
		{"abc", "Price must be a valid positive number"},
		{"NaN", "Price must be a valid positive number"},
		{"Inf", "Price must be a valid positive number"},
		{"", "Price is required"},
	}
	for _, tt := range tests {
		errs := Validate(KindFoodItem, with(KindFoodItem, "price", tt.price))
		if tt.want == "" {
			assert.NotContains(t, errs, "price", tt.price)
		} else {
			assert.Equal(t, tt.want, errs["price"], tt.price)
		}
	}
}

func TestValidate_FoodItemImageCreateVersusUpdate(t *testing.T) {
	rec := with(KindFoodItem, "foodItemImage", nil)
	assert.Equal(t, Errors{"foodItemImage": "Please upload image"}, Validate(KindFoodItem, rec))
	assert.Empty(t, Validate(KindFoodItemUpdate, rec))
}

func TestValidate_FoodItemName(t *testing.T) {
	assert.NotContains(t, Validate(KindFoodItem, with(KindFoodItem, "foodItemName", "Veg Biryani")), "foodItemName")
	assert.Equal(t, "Food item name must contain only alphabets and cannot include numbers",
		Validate(KindFoodItem, with(KindFoodItem, "foodItemName", "Biryani 2"))["foodItemName"])
	assert.Equal(t, "Food item name is required",
		Validate(KindFoodItemUpdate, with(KindFoodItemUpdate, "foodItemName", "  "))["foodItemName"])
	assert.Equal(t, "Description is required",
		Validate(KindFoodItem, with(KindFoodItem, "description", ""))["description"])
}

func TestValidate_Address(t *testing.T) {
	tests := []struct {
		field string
		value string
		want  string
	}{
		{"pinCode", "560001", ""},
		{"pinCode", "56001", "Pin code must be exactly 6 digits"},
		{"pinCode", "56A001", "Pin code must be exactly 6 digits"},
		{"pinCode", "5600011", "Pin code must be exactly 6 digits"},
		{"pinCode", "", "Pin code is required"},
		{"street", "Main", ""},
		{"street", "Mg", "Street must be between 4 and 100 characters"},
		{"street", strings.Repeat("s", 101), "Street must be between 4 and 100 characters"},
		{"city", "Goa", ""},
		{"city", "Go", "City must be between 3 and 50 characters"},
		{"city", "New Delhi", "City must contain only alphabets"},
		{"state", "UP", ""},
		{"state", "Tamil Nadu", ""},
		{"state", "U", "State must be between 2 and 50 characters"},
		{"state", "Zone 5", "State must contain only alphabets and spaces"},
		{"country", "India", ""},
		{"country", strings.Repeat("a", 51), "Country cannot exceed 50 characters"},
		{"country", "Sri Lanka", "Country must contain only alphabets"},
		{"country", "", "Country is required"},
	}
	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.value, func(t *testing.T) {
			errs := Validate(KindAddress, with(KindAddress, tt.field, tt.value))
			if tt.want == "" {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, Errors{tt.field: tt.want}, errs)
			}
		})
	}
}

func TestValidate_ContactMessage(t *testing.T) {
	assert.Equal(t, "Subject is required.", Validate(KindContactMessage, with(KindContactMessage, "subject", " "))["subject"])
	assert.Equal(t, "Subject must be between 1 and 100 characters.",
		Validate(KindContactMessage, with(KindContactMessage, "subject", strings.Repeat("s", 101)))["subject"])
	assert.Equal(t, "Text must be between 1 and 500 characters.",
		Validate(KindContactMessage, with(KindContactMessage, "message", strings.Repeat("m", 501)))["message"])
}

func TestValidate_UnknownKind(t *testing.T) {
	errs := Validate(Kind("invoice"), Record{})
	assert.Equal(t, Errors{FormField: `Unknown form "invoice"`}, errs)
}

func TestErrors_AddKeepsFirstMessage(t *testing.T) {
	errs := Errors{}
	errs.Add("email", "first")
	errs.Add("email", "second")
	assert.Equal(t, "first", errs["email"])
}
