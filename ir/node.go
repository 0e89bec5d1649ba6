package ir

// Node is one value of a JSON document. Objects keep their Fields (key
// nodes) and Values in parallel slices, in document order.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64

	// Text preserves a number's source lexeme when float64 cannot
	// carry the value, so re-encoding stays valid JSON.
	Text string
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: &v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func Array() *Node {
	return &Node{Type: ArrayType}
}

// SetField appends a field to an object node. Duplicate keys are kept
// as the document had them.
func (y *Node) SetField(name string, v *Node) {
	key := FromString(name)
	key.Parent = y
	key.ParentIndex = len(y.Fields)
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = name
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// Append appends an element to an array node.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Values = append(y.Values, v)
}

// Field returns the value of the named field, or nil. For duplicate
// keys the last one wins.
func (y *Node) Field(name string) *Node {
	for i := len(y.Fields) - 1; i >= 0; i-- {
		if y.Fields[i].String == name {
			return y.Values[i]
		}
	}
	return nil
}

// Len is the number of fields of an object or elements of an array.
func (y *Node) Len() int {
	return len(y.Values)
}

// Float returns the numeric value of a number node as a float64.
func (y *Node) Float() float64 {
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	return 0
}

// Interface converts the node to the usual dynamic Go representation:
// map[string]any, []any, string, int64, float64, bool, nil.
func (y *Node) Interface() any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i].String] = y.Values[i].Interface()
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, elt := range y.Values {
			res[i] = elt.Interface()
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		return y.Float()
	case BoolType:
		return y.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Fields = make([]*Node, len(y.Fields))
	dst.Values = make([]*Node, len(y.Values))
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Text = y.Text
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}
