package naming_test

import (
	"fmt"

	"driver-generator/internal/naming"
)

func ExampleStem() {
	st := naming.NewStem("TextBox", nil)
	fmt.Println(st.Next(), st.Next(), st.Next())

	st = naming.NewStem("Button", map[string]struct{}{"Button2": {}})
	fmt.Println(st.Next(), st.Next(), st.Next())

	// Output:
	// TextBox1 TextBox2 TextBox3
	// Button1 Button3 Button4
}
