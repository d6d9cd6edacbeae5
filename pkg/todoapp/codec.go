package todoapp

import (
	"encoding/json"
	"fmt"
)

// ByteArray is a byte sequence that travels as a JSON array of numbers
// instead of the base64 string encoding/json uses for []byte. A nil
// ByteArray is sent as [].
type ByteArray []byte

func (b ByteArray) MarshalJSON() ([]byte, error) {
	numbers := make([]uint16, len(b))
	for idx := range b {
		numbers[idx] = uint16(b[idx])
	}

	return json.Marshal(numbers)
}

func (b *ByteArray) UnmarshalJSON(data []byte) error {
	var numbers []int
	err := json.Unmarshal(data, &numbers)
	if err != nil {
		return err
	}

	if numbers == nil {
		*b = nil
		return nil
	}

	result := make(ByteArray, len(numbers))
	for idx, n := range numbers {
		if n < 0 || n > 255 {
			return fmt.Errorf("byte value %d at index %d is out of range", n, idx)
		}
		result[idx] = byte(n)
	}

	*b = result
	return nil
}

// TimeSpan is a [startTime, endTime] pair encoded as a two element array.
type TimeSpan struct {
	StartTime int64
	EndTime   int64
}

func (ts TimeSpan) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{ts.StartTime, ts.EndTime})
}

func (ts *TimeSpan) UnmarshalJSON(data []byte) error {
	var pair []int64
	err := json.Unmarshal(data, &pair)
	if err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("time span must have exactly two elements, got %d", len(pair))
	}

	ts.StartTime = pair[0]
	ts.EndTime = pair[1]

	return nil
}
