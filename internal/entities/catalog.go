package entities

// Справочные данные принадлежат внешнему каталогу и доступны только на чтение.

type ReferenceKind string

const (
	RefTruckType     ReferenceKind = "truck_type"
	RefTruckCategory ReferenceKind = "truck_category"
	RefBedType       ReferenceKind = "bed_type"
	RefUseTag        ReferenceKind = "use_tag"
)

func (k ReferenceKind) String() string {
	return string(k)
}

type ReferenceItem struct {
	Kind ReferenceKind
	ID   string
	Name string
}
