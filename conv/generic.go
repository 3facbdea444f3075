package conv

// To converts src to T
func To[T any](c *Converter, src interface{}) (T, error) {
	var result T
	err := c.Convert(src, &result)
	return result, err
}

// From converts src, interpreted as tag encoded text, to T
func From[T any](c *Converter, tag Tag, src interface{}) (T, error) {
	var result T
	err := c.ConvertFrom(tag, src, &result)
	return result, err
}

// ToOr converts src to T, it returns def if conversion fails
func ToOr[T any](c *Converter, src interface{}, def T) T {
	result, err := To[T](c, src)
	if err != nil {
		return def
	}
	return result
}

// FromOr converts tag encoded src to T, it returns def if conversion fails
func FromOr[T any](c *Converter, tag Tag, src interface{}, def T) T {
	result, err := From[T](c, tag, src)
	if err != nil {
		return def
	}
	return result
}

// EncodeOr converts src to tag encoded text, it returns def if conversion fails
func (c *Converter) EncodeOr(tag Tag, src interface{}, def string) string {
	result, err := c.Encode(tag, src)
	if err != nil {
		return def
	}
	return result
}
