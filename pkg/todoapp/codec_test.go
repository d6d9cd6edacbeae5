package todoapp

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestByteArrayIsANumberArray(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(ByteArray{0, 97, 255})
	is.NoErr(err)
	is.Equal(string(b), "[0,97,255]")

	var decoded ByteArray
	err = json.Unmarshal([]byte("[0,97,255]"), &decoded)
	is.NoErr(err)
	is.Equal([]byte(decoded), []byte{0, 97, 255})
}

func TestByteArrayRejectsValuesOutOfRange(t *testing.T) {
	is := is.New(t)

	var decoded ByteArray
	err := json.Unmarshal([]byte("[1,256]"), &decoded)

	is.True(err != nil)
}

func TestTimeSpanIsAPair(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(TimeSpan{StartTime: 100, EndTime: 200})
	is.NoErr(err)
	is.Equal(string(b), "[100,200]")

	var ts TimeSpan
	is.NoErr(json.Unmarshal([]byte("[5,6]"), &ts))
	is.Equal(ts, TimeSpan{StartTime: 5, EndTime: 6})

	is.True(json.Unmarshal([]byte("[5]"), &ts) != nil) // a single element should be rejected
}

func TestNilByteArrayIsAnEmptyArray(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(ByteArray(nil))

	is.NoErr(err)
	is.Equal(string(b), "[]")
}
