package person

import (
	"testing"
	"time"
)

func samplePeople() []Person {
	return []Person{
		{Name: "Иванов Иван", Pnumber: "111", Birth: NewDate(1990, time.May, 1)},
		{Name: "Петров Пётр", Pnumber: "222", Birth: NewDate(1985, time.March, 15)},
		{Name: "Сидорова Анна", Pnumber: "333", Birth: NewDate(2001, time.March, 3)},
		{Name: "Кузнецов Олег", Pnumber: "444", Birth: NewDate(1977, time.December, 31)},
	}
}

func TestSelectByMonth(t *testing.T) {
	people := samplePeople()

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{name: "number", token: "3", want: []string{"Петров Пётр", "Сидорова Анна"}},
		{name: "padded number", token: "03", want: []string{"Петров Пётр", "Сидорова Анна"}},
		{name: "month name", token: "март", want: []string{"Петров Пётр", "Сидорова Анна"}},
		{name: "single match", token: "5", want: []string{"Иванов Иван"}},
		{name: "december by name", token: "декабрь", want: []string{"Кузнецов Олег"}},
		{name: "no match", token: "06", want: nil},
		{name: "out of range", token: "13", want: nil},
		{name: "unknown name matches nothing", token: "blah", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectByMonth(people, tt.token)
			if got == nil {
				t.Fatal("SelectByMonth returned nil, want non-nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SelectByMonth(%q) returned %d people, want %d", tt.token, len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("result[%d].Name = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestSelectByMonth_NumberAndNameAgree(t *testing.T) {
	people := samplePeople()
	byNumber := SelectByMonth(people, "3")
	byName := SelectByMonth(people, "март")

	if len(byNumber) != len(byName) {
		t.Fatalf("len by number = %d, by name = %d", len(byNumber), len(byName))
	}
	for i := range byNumber {
		if !byNumber[i].Equal(byName[i]) {
			t.Errorf("result[%d] differs: %+v vs %+v", i, byNumber[i], byName[i])
		}
	}
}

func TestSelectByMonth_Example(t *testing.T) {
	people := []Person{{Name: "Иванов Иван", Pnumber: "111", Birth: NewDate(1990, time.May, 1)}}

	got := SelectByMonth(people, "май")
	if len(got) != 1 || !got[0].Equal(people[0]) {
		t.Errorf("SelectByMonth(май) = %+v, want the single record", got)
	}
	if got := SelectByMonth(people, "06"); len(got) != 0 {
		t.Errorf("SelectByMonth(06) = %+v, want empty", got)
	}
}

func TestSelectByMonth_Empty(t *testing.T) {
	got := SelectByMonth(nil, "01")
	if got == nil || len(got) != 0 {
		t.Errorf("SelectByMonth(nil) = %#v, want empty non-nil slice", got)
	}
}
