package debugui

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sceneloop/scene"
)

type ObjectInfo struct {
	ID     scene.ObjectId
	Name   string
	Role   scene.Role
	Shape  scene.ShapeKind
	Motion string
}

type objectBrowserCache struct {
	objects       []ObjectInfo
	version       uint64
	built         bool
	sortColumn    int
	sortAscending bool
}

// ObjectBrowser lists every object in a scene with filtering, sorting and
// paging. The listing is rebuilt only when the scene's structure changes.
type ObjectBrowser struct {
	cache             *objectBrowserCache
	selectedId        scene.ObjectId
	filterText        string
	maxObjectsPerPage int
	currentPage       int
}

func NewObjectBrowser(maxObjectsPerPage int) *ObjectBrowser {
	return &ObjectBrowser{
		cache:             &objectBrowserCache{sortAscending: true},
		maxObjectsPerPage: maxObjectsPerPage,
	}
}

func (ob *ObjectBrowser) Render(sc *scene.Scene) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)
	if !imgui.BeginV("Object Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ob.rebuildCacheIfNeeded(sc)

	imgui.InputTextWithHint("##search", "Search...", &ob.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ob.filterText = ""
		ob.currentPage = 0
	}

	filtered := ob.filteredObjects()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Role")
		imgui.TableSetupColumn("Shape")
		imgui.TableSetupColumn("Motion")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			ob.cache.sortColumn = int(spec.ColumnIndex())
			ob.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			ob.sortObjects()
			sortSpecs.SetSpecsDirty(false)
			filtered = ob.filteredObjects()
		}

		start, end := ob.pageBounds(len(filtered))
		for _, obj := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", obj.ID), ob.selectedId == obj.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ob.selectedId = obj.ID
			}
			imgui.TableNextColumn()
			imgui.Text(obj.Name)
			imgui.TableNextColumn()
			imgui.Text(obj.Role.String())
			imgui.TableNextColumn()
			imgui.Text(obj.Shape.String())
			imgui.TableNextColumn()
			imgui.Text(obj.Motion)
		}

		imgui.EndTable()
	}

	if len(filtered) > ob.maxObjectsPerPage {
		totalPages := ob.totalPages(len(filtered))
		imgui.Text(fmt.Sprintf("Page %d / %d (%d objects)", ob.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && ob.currentPage > 0 {
			ob.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && ob.currentPage < totalPages-1 {
			ob.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d objects", len(filtered)))
	}

	imgui.End()
}

func (ob *ObjectBrowser) rebuildCacheIfNeeded(sc *scene.Scene) {
	if ob.cache.built && ob.cache.version == sc.Version() {
		return
	}
	ob.rebuildCache(sc)
}

func (ob *ObjectBrowser) rebuildCache(sc *scene.Scene) {
	ob.cache.objects = make([]ObjectInfo, 0, sc.Len())
	for obj := range sc.Objects() {
		ob.cache.objects = append(ob.cache.objects, ObjectInfo{
			ID:     obj.Id,
			Name:   obj.Name,
			Role:   obj.Role,
			Shape:  obj.Shape.Kind,
			Motion: motionName(obj.Motion),
		})
	}
	ob.cache.version = sc.Version()
	ob.cache.built = true

	ob.sortObjects()
}

func motionName(motion any) string {
	if motion == nil {
		return "-"
	}
	return reflect.TypeOf(motion).Name()
}

func (ob *ObjectBrowser) sortObjects() {
	sort.SliceStable(ob.cache.objects, func(i, j int) bool {
		a, b := ob.cache.objects[i], ob.cache.objects[j]
		var less bool

		switch ob.cache.sortColumn {
		case 1:
			less = a.Name < b.Name
		case 2:
			less = a.Role < b.Role
		case 3:
			less = a.Shape < b.Shape
		case 4:
			less = a.Motion < b.Motion
		default:
			less = a.ID < b.ID
		}

		if !ob.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (ob *ObjectBrowser) filteredObjects() []ObjectInfo {
	if ob.filterText == "" {
		return ob.cache.objects
	}

	filtered := make([]ObjectInfo, 0, len(ob.cache.objects))
	filterLower := strings.ToLower(ob.filterText)

	for _, obj := range ob.cache.objects {
		haystack := strings.ToLower(strings.Join([]string{
			fmt.Sprintf("%d", obj.ID),
			obj.Name,
			obj.Role.String(),
			obj.Shape.String(),
			obj.Motion,
		}, " "))
		if strings.Contains(haystack, filterLower) {
			filtered = append(filtered, obj)
		}
	}

	return filtered
}

func (ob *ObjectBrowser) totalPages(n int) int {
	return (n + ob.maxObjectsPerPage - 1) / ob.maxObjectsPerPage
}

// pageBounds clamps the current page to the listing and returns the slice
// bounds it covers.
func (ob *ObjectBrowser) pageBounds(n int) (int, int) {
	if pages := ob.totalPages(n); ob.currentPage >= pages {
		ob.currentPage = max(pages-1, 0)
	}
	start := ob.currentPage * ob.maxObjectsPerPage
	end := min(start+ob.maxObjectsPerPage, n)
	return start, end
}

// Selected returns the id of the selected object, or 0.
func (ob *ObjectBrowser) Selected() scene.ObjectId {
	return ob.selectedId
}
