package mapping

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Target struct {
	Id   int
	Name string
}

type EntityWithDictionaries struct {
	Id        int
	Dict      map[string]string
	Counts    map[string]int
	Refs      map[string]*Target
	ByTarget  map[*Target]string
	Ternary   map[*Target]*Target
	ByGuid    map[uuid.UUID]string
	ByUlid    map[ulid.ULID]int
	Extra     map[string]any
	Tags      []string
	Addresses map[string]Address
	ByAddress map[Address]string
}

type Address struct {
	Street string
	City   string
}

type User struct {
	Id      int
	Name    string
	Email   *string
	Address Address
	Profile *Profile
}

type Profile struct {
	Id  int
	Bio string
}

type Comment struct {
	Id   int
	Body string
	Post *Post
}

type Tag struct {
	Id   int
	Name string
}

type Line struct {
	Position int
	Text     string
	Author   *User
	Address  Address
}

type Post struct {
	Id       int
	Title    string
	Body     *string
	Author   *User
	Comments []*Comment
	Tags     []*Tag
	Labels   map[string]struct{}
	Words    []string
	Lines    []Line
	ByUser   map[*User]*Comment
	Version  int
	readers  []*User
}

func (p *Post) GetReaders() []*User {
	return p.readers
}

type Blog struct {
	Id    uuid.UUID
	Title string
	Owner *User
	Posts []*Post
}

type Priority int8

type Code string

type EntityWithTypedDictionaries struct {
	Id int

	ByString  map[string]bool
	ByBool    map[bool]string
	ByInt     map[int]string
	ByInt64   map[int64]string
	ByInt32   map[int32]string
	ByInt16   map[int16]string
	ByInt8    map[int8]string
	ByUint    map[uint]string
	ByUint64  map[uint64]string
	ByUint32  map[uint32]string
	ByUint16  map[uint16]string
	ByUint8   map[uint8]string
	ByFloat32 map[float32]string
	ByFloat64 map[float64]string
	ByCode    map[Code]string
	ByPrio    map[Priority]string

	OfString  map[bool]string
	OfBool    map[string]bool
	OfInt     map[string]int
	OfInt64   map[string]int64
	OfInt32   map[string]int32
	OfInt16   map[string]int16
	OfInt8    map[string]int8
	OfUint    map[string]uint
	OfUint64  map[string]uint64
	OfUint32  map[string]uint32
	OfUint16  map[string]uint16
	OfUint8   map[string]uint8
	OfFloat32 map[string]float32
	OfFloat64 map[string]float64
	OfCode    map[string]Code
	OfPrio    map[string]*Priority
}
