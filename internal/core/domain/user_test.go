package domain

import "testing"

func TestUser_AgeCategory(t *testing.T) {
	age := func(n int) *int { return &n }

	cases := []struct {
		name string
		age  *int
		want string
	}{
		{"unset", nil, AgeCategoryNotSpecified},
		{"zero", age(0), AgeCategoryMinor},
		{"seventeen", age(17), AgeCategoryMinor},
		{"eighteen", age(18), AgeCategoryAdult},
		{"sixty_four", age(64), AgeCategoryAdult},
		{"sixty_five", age(65), AgeCategorySenior},
		{"hundred_fifty", age(150), AgeCategorySenior},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := &User{Age: tc.age}
			if got := u.AgeCategory(); got != tc.want {
				t.Fatalf("AgeCategory() = %q, want %q", got, tc.want)
			}
		})
	}
}
