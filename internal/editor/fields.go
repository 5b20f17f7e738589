package editor

// FieldSet says which property groups an element kind exposes for editing.
type FieldSet struct {
	Content    bool
	Background bool
	TextColor  bool
}

var editableFields = map[Kind]FieldSet{
	KindContainer: {Background: true},
	KindCard:      {Background: true},
	KindText:      {Content: true, Background: true, TextColor: true},
	KindHeading:   {Content: true, Background: true, TextColor: true},
	KindButton:    {Content: true, Background: true, TextColor: true},
	KindInput:     {Content: true, Background: true, TextColor: true},
	KindSelect:    {Content: true, Background: true, TextColor: true},
	KindCheckbox:  {Background: true},
	KindRadio:     {Background: true},
	KindSwitch:    {Background: true},
	KindSlider:    {TextColor: true},
	KindProgress:  {Background: true, TextColor: true},
	KindAvatar:    {Background: true},
	KindBadge:     {Content: true, Background: true, TextColor: true},
	KindImage:     {Background: true},
	KindLine:      {},
	KindIcon:      {TextColor: true},
	KindShape:     {Background: true},
}

// EditableFields returns the property groups shown for kind. Geometry,
// border, radius, opacity and shadow are editable for every kind.
func EditableFields(k Kind) FieldSet {
	return editableFields[k]
}
