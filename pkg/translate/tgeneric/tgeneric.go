package tgeneric

func MassConvert[T any, O any](items []T, convFunc func(T) O) []O {
	arr := make([]O, len(items))
	for i, v := range items {
		arr[i] = convFunc(v)
	}
	return arr
}

// MassConvertErr stops at the first conversion error.
func MassConvertErr[T any, O any](items []T, convFunc func(T) (O, error)) ([]O, error) {
	arr := make([]O, len(items))
	for i, v := range items {
		o, err := convFunc(v)
		if err != nil {
			return nil, err
		}
		arr[i] = o
	}
	return arr, nil
}
