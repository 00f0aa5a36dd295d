package group_test

import (
	"fmt"

	"github.com/katalvlaran/crysym/group"
)

// ExampleNew closes the symmetric group on three points from two
// generators and reads back its order and conjugacy-class sizes.
func ExampleNew() {
	g, err := group.New([]perm{
		newPerm(1, 0, 2), // transposition (0 1)
		newPerm(1, 2, 0), // 3-cycle (0 1 2)
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("order:", g.Order())
	for _, cls := range g.Classes() {
		fmt.Println("class size:", len(cls))
	}
	// Output:
	// order: 6
	// class size: 1
	// class size: 3
	// class size: 2
}
