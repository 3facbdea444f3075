package conv

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
)

type SimpleStruct struct {
	Name        string
	Age         int
	Active      bool
	Score       float64
	DateJoined  time.Time
	Tags        []string
	Collection  []*Basic
	IgnoreField string `json:"-"`
	Renamed     string `json:"custom_name"`
	unexported  string
}

type Basic struct {
	Id int
}

type nestedStruct struct {
	SimpleStruct
	Address string
	Details map[string]interface{}
}

type document struct {
	ID      int       `json:"id"`
	Payload []byte    `format:"encoding=hex"`
	Created time.Time `format:"dateFormat=YYYY-MM-DD"`
	Secret  string    `format:"ignore"`
	Note    string    `json:"note,omitempty"`
}

func TestConvertToSlice(t *testing.T) {
	converter := newTestConverter(t)

	var testCases = []struct {
		description string
		src         interface{}
		dest        interface{}
		expect      interface{}
		expectErr   bool
	}{
		{description: "[]int from []int", src: []int{1, 2, 3}, dest: &[]int{}, expect: []int{1, 2, 3}},
		{description: "[]int from []string", src: []string{"1", "2", "3"}, dest: &[]int{}, expect: []int{1, 2, 3}},
		{description: "[]string from []int", src: []int{1, 2, 3}, dest: &[]string{}, expect: []string{"1", "2", "3"}},
		{description: "[]string from array", src: [2]int{4, 5}, dest: &[]string{}, expect: []string{"4", "5"}},
		{
			description: "[]string from []interface{}",
			src:         []interface{}{"hello", 123, true, 45.67},
			dest:        &[]string{},
			expect:      []string{"hello", "123", "true", "45.67"},
		},
		{description: "[]*int from []string", src: []string{"7"}, dest: &[]*int{}, expect: []*int{intPtr(7)}},
		{description: "nil slice", src: []int(nil), dest: &[]string{"x"}, expect: []string(nil)},
		{description: "invalid element", src: []string{"1", "x"}, dest: &[]int{}, expectErr: true},
		{description: "scalar to slice", src: "hello", dest: &[]int{}, expectErr: true},
	}

	for _, testCase := range testCases {
		err := converter.Convert(testCase.src, testCase.dest)
		if testCase.expectErr {
			assert.True(t, IsError(err), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, reflect.ValueOf(testCase.dest).Elem().Interface(), testCase.description)
	}
}

func TestConvertToMap(t *testing.T) {
	converter := newTestConverter(t)

	type Person struct {
		Name  string  `json:"name"`
		Age   int     `json:"age"`
		Score float64 `json:"score"`
	}

	resultMap, err := To[map[string]interface{}](converter, Person{Name: "John", Age: 30, Score: 85.5})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "John", "age": 30, "score": 85.5}, resultMap)

	destMap, err := To[map[string]string](converter, map[string]int{"one": 1, "two": 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"one": "1", "two": "2"}, destMap)

	keyed, err := To[map[int]bool](converter, map[string]string{"1": "true", "2": "0"})
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: false}, keyed)

	_, err = To[map[int]bool](converter, map[string]string{"x": "true"})
	assert.True(t, IsError(err))
}

func TestConvertMapToStruct(t *testing.T) {
	converter := newTestConverter(t)

	srcMap := map[string]interface{}{
		"name":        "Jane Smith",
		"age":         25,
		"active":      true,
		"score":       92.5,
		"custom_name": "Renamed Value",
		"ignorefield": "skipped",
		"unexported":  "skipped",
		"tags":        []string{"tag1", "tag2"},
		"collection": []interface{}{
			map[string]interface{}{"id": 1},
			map[string]interface{}{"id": 2},
		},
	}

	var result SimpleStruct
	require.NoError(t, converter.Convert(srcMap, &result))
	assert.Equal(t, "Jane Smith", result.Name)
	assert.Equal(t, 25, result.Age)
	assert.True(t, result.Active)
	assert.Equal(t, 92.5, result.Score)
	assert.Equal(t, []string{"tag1", "tag2"}, result.Tags)
	assert.Equal(t, []*Basic{{Id: 1}, {Id: 2}}, result.Collection)
	assert.Equal(t, "Renamed Value", result.Renamed)
	assert.Empty(t, result.IgnoreField)
	assert.Empty(t, result.unexported)

	caseConverter := newTestConverter(t, func(o *Options) { o.CaseSensitive = true })
	var caseResult SimpleStruct
	require.NoError(t, caseConverter.Convert(map[string]interface{}{"Name": "John Doe", "age": 30}, &caseResult))
	assert.Equal(t, "John Doe", caseResult.Name)
	assert.Equal(t, 0, caseResult.Age)

	var failed SimpleStruct
	err := converter.Convert(map[string]interface{}{"age": "old"}, &failed)
	assert.True(t, IsError(err))
}

func TestConvertNestedStructs(t *testing.T) {
	converter := newTestConverter(t)

	srcMap := map[string]interface{}{
		"name":    "John Doe",
		"age":     30,
		"active":  true,
		"address": "123 Main St",
		"details": map[string]interface{}{
			"country": "USA",
			"zip":     "12345",
		},
	}

	var result nestedStruct
	require.NoError(t, converter.Convert(srcMap, &result))
	assert.Equal(t, "John Doe", result.Name)
	assert.Equal(t, 30, result.Age)
	assert.True(t, result.Active)
	assert.Equal(t, "123 Main St", result.Address)
	assert.Equal(t, "USA", result.Details["country"])
	assert.Equal(t, "12345", result.Details["zip"])
}

func TestConvertStructToStruct(t *testing.T) {
	converter := newTestConverter(t)

	type target struct {
		Name    string
		Age     string
		Address *string
		Missing int
	}

	src := nestedStruct{SimpleStruct: SimpleStruct{Name: "Jane", Age: 41}, Address: "Main St"}
	result, err := To[target](converter, src)
	require.NoError(t, err)
	assert.Equal(t, "Jane", result.Name)
	assert.Equal(t, "41", result.Age)
	require.NotNil(t, result.Address)
	assert.Equal(t, "Main St", *result.Address)
	assert.Equal(t, 0, result.Missing)
}

func TestConvertFormatTag(t *testing.T) {
	converter := newTestConverter(t)
	created := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	asMap, err := To[map[string]interface{}](converter, document{ID: 1, Payload: []byte{0xff, 0x00}, Created: created, Secret: "s"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": 1, "Payload": "ff00", "Created": "2024-03-05"}, asMap)

	actual, err := To[document](converter, map[string]interface{}{
		"id":      "7",
		"payload": "ff00",
		"created": "2024-03-05",
		"secret":  "s",
		"note":    "n",
	})
	require.NoError(t, err)
	assert.Equal(t, document{ID: 7, Payload: []byte{0xff, 0x00}, Created: created, Note: "n"}, actual)

	_, err = To[document](converter, map[string]interface{}{"payload": "zz"})
	assert.True(t, IsError(err))
}

func TestConvertCaseFormat(t *testing.T) {
	converter := newTestConverter(t, func(o *Options) { o.CaseFormat = text.CaseFormatLowerUnderscore })

	type account struct {
		ID        int
		FirstName string
	}

	asMap, err := To[map[string]interface{}](converter, account{ID: 3, FirstName: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": 3, "first_name": "Ann"}, asMap)

	actual, err := To[account](converter, map[string]interface{}{"id": 4, "first_name": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, account{ID: 4, FirstName: "Bob"}, actual)
}

func TestConvertUnexported(t *testing.T) {
	converter := newTestConverter(t, func(o *Options) { o.AccessUnexported = true })

	var result SimpleStruct
	require.NoError(t, converter.Convert(map[string]interface{}{"unexported": "visible"}, &result))
	assert.Equal(t, "visible", result.unexported)
}

func TestProjectsConversion(t *testing.T) {
	converter := newTestConverter(t)

	type Project struct {
		RootPath     string
		Type         string
		Name         string
		RelativePath string
	}

	type Config struct {
		Projects []*Project
	}

	srcData := map[string]interface{}{
		"Projects": []interface{}{
			map[string]interface{}{
				"RootPath":     "fluxor",
				"Type":         "go",
				"Name":         "github.com/viant/fluxor",
				"RelativePath": ".",
			},
		},
	}

	config, err := To[Config](converter, srcData)
	require.NoError(t, err)
	require.Len(t, config.Projects, 1)

	project := config.Projects[0]
	assert.Equal(t, "fluxor", project.RootPath)
	assert.Equal(t, "go", project.Type)
	assert.Equal(t, "github.com/viant/fluxor", project.Name)
	assert.Equal(t, ".", project.RelativePath)
}

func intPtr(v int) *int {
	return &v
}
