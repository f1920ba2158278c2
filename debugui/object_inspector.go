package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sceneloop/scene"
)

// ObjectInspector shows and edits the transform and motion of one object.
type ObjectInspector struct {
	fields *FieldCache
}

func NewObjectInspector() *ObjectInspector {
	return &ObjectInspector{fields: NewFieldCache()}
}

func (oi *ObjectInspector) Render(sc *scene.Scene, selected scene.ObjectId) {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)
	if !imgui.BeginV("Object Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected == 0 {
		imgui.Text("No object selected")
		imgui.End()
		return
	}

	obj := sc.Get(selected)
	if obj == nil {
		imgui.Text(fmt.Sprintf("Object %d was removed", selected))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("ID: %d", obj.Id))
	imgui.Text(fmt.Sprintf("Name: %s", obj.Name))
	imgui.Text(fmt.Sprintf("Role: %s", obj.Role))
	imgui.Text(fmt.Sprintf("Shape: %s", obj.Shape.Kind))
	imgui.Text(fmt.Sprintf("Color: %s", obj.Color))
	imgui.Separator()

	if imgui.TreeNodeStr("Position") {
		floatInput("X", &obj.Position[0])
		floatInput("Y", &obj.Position[1])
		floatInput("Z", &obj.Position[2])
		imgui.TreePop()
	}
	if imgui.TreeNodeStr("Rotation") {
		floatInput("X", &obj.Rotation.X)
		floatInput("Y", &obj.Rotation.Y)
		floatInput("Z", &obj.Rotation.Z)
		imgui.TreePop()
	}

	if obj.Motion != nil && imgui.TreeNodeStr(motionName(obj.Motion)) {
		motion := editableCopy(obj.Motion)
		if oi.renderValue(motion) {
			sc.SetMotion(obj.Id, motion.Interface())
		}
		imgui.TreePop()
	}

	imgui.End()
}

func floatInput(name string, v *float32) bool {
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	return imgui.InputFloat(fmt.Sprintf("##%s", name), v)
}

// renderValue draws the exported fields of an addressable struct and reports
// whether any of them was edited.
func (oi *ObjectInspector) renderValue(val reflect.Value) bool {
	changed := false
	for _, field := range oi.fields.GetFields(val.Type()) {
		if oi.renderField(field.Name, val.Field(field.Index)) {
			changed = true
		}
	}
	return changed
}

func (oi *ObjectInspector) renderField(name string, val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		if floatInput(name, &v) {
			val.SetFloat(float64(v))
			return true
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 {
			val.SetUint(uint64(v))
			return true
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) {
			val.SetInt(int64(v))
			return true
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			val.SetBool(v)
			return true
		}

	case reflect.Struct:
		changed := false
		if imgui.TreeNodeStr(name) {
			changed = oi.renderValue(val)
			imgui.TreePop()
		}
		return changed

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
	return false
}
