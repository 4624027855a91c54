package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// mapTo copies same-named fields from a read model into a response type.
// Failure means the two shapes drifted apart, so it panics and the recovery
// middleware answers 500.
func mapTo[T any](src any) T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic(fmt.Sprintf("response mapping %T: %v", src, err))
	}
	return dst
}
