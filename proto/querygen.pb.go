// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: querygen.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GenerateQueriesRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	CompanyName        string                 `protobuf:"bytes,1,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	Domain             string                 `protobuf:"bytes,2,opt,name=domain,proto3" json:"domain,omitempty"`
	Industry           string                 `protobuf:"bytes,3,opt,name=industry,proto3" json:"industry,omitempty"`
	Competitors        []string               `protobuf:"bytes,4,rep,name=competitors,proto3" json:"competitors,omitempty"`
	Aliases            []string               `protobuf:"bytes,5,rep,name=aliases,proto3" json:"aliases,omitempty"`
	QueriesPerCategory int32                  `protobuf:"varint,6,opt,name=queries_per_category,json=queriesPerCategory,proto3" json:"queries_per_category,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GenerateQueriesRequest) Reset() {
	*x = GenerateQueriesRequest{}
	mi := &file_querygen_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateQueriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateQueriesRequest) ProtoMessage() {}

func (x *GenerateQueriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_querygen_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateQueriesRequest.ProtoReflect.Descriptor instead.
func (*GenerateQueriesRequest) Descriptor() ([]byte, []int) {
	return file_querygen_proto_rawDescGZIP(), []int{0}
}

func (x *GenerateQueriesRequest) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *GenerateQueriesRequest) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

func (x *GenerateQueriesRequest) GetIndustry() string {
	if x != nil {
		return x.Industry
	}
	return ""
}

func (x *GenerateQueriesRequest) GetCompetitors() []string {
	if x != nil {
		return x.Competitors
	}
	return nil
}

func (x *GenerateQueriesRequest) GetAliases() []string {
	if x != nil {
		return x.Aliases
	}
	return nil
}

func (x *GenerateQueriesRequest) GetQueriesPerCategory() int32 {
	if x != nil {
		return x.QueriesPerCategory
	}
	return 0
}

type GeneratedQuery struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Query string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	// One of: problem_unaware, solution_seeking, brand_specific,
	// comparison, evaluation, post_purchase.
	Category string `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	// One of: informational, commercial, transactional, navigational.
	Type                string `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Intent              string `protobuf:"bytes,4,opt,name=intent,proto3" json:"intent,omitempty"`
	Difficulty          int32  `protobuf:"varint,5,opt,name=difficulty,proto3" json:"difficulty,omitempty"` // 0-10
	Priority            string `protobuf:"bytes,6,opt,name=priority,proto3" json:"priority,omitempty"`      // low, medium, high
	MonthlySearchVolume int32  `protobuf:"varint,7,opt,name=monthly_search_volume,json=monthlySearchVolume,proto3" json:"monthly_search_volume,omitempty"`
	AiRelevance         int32  `protobuf:"varint,8,opt,name=ai_relevance,json=aiRelevance,proto3" json:"ai_relevance,omitempty"` // 0-10
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *GeneratedQuery) Reset() {
	*x = GeneratedQuery{}
	mi := &file_querygen_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GeneratedQuery) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GeneratedQuery) ProtoMessage() {}

func (x *GeneratedQuery) ProtoReflect() protoreflect.Message {
	mi := &file_querygen_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GeneratedQuery.ProtoReflect.Descriptor instead.
func (*GeneratedQuery) Descriptor() ([]byte, []int) {
	return file_querygen_proto_rawDescGZIP(), []int{1}
}

func (x *GeneratedQuery) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *GeneratedQuery) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *GeneratedQuery) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *GeneratedQuery) GetIntent() string {
	if x != nil {
		return x.Intent
	}
	return ""
}

func (x *GeneratedQuery) GetDifficulty() int32 {
	if x != nil {
		return x.Difficulty
	}
	return 0
}

func (x *GeneratedQuery) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *GeneratedQuery) GetMonthlySearchVolume() int32 {
	if x != nil {
		return x.MonthlySearchVolume
	}
	return 0
}

func (x *GeneratedQuery) GetAiRelevance() int32 {
	if x != nil {
		return x.AiRelevance
	}
	return 0
}

type GenerateQueriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queries       []*GeneratedQuery      `protobuf:"bytes,1,rep,name=queries,proto3" json:"queries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateQueriesResponse) Reset() {
	*x = GenerateQueriesResponse{}
	mi := &file_querygen_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateQueriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateQueriesResponse) ProtoMessage() {}

func (x *GenerateQueriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_querygen_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateQueriesResponse.ProtoReflect.Descriptor instead.
func (*GenerateQueriesResponse) Descriptor() ([]byte, []int) {
	return file_querygen_proto_rawDescGZIP(), []int{2}
}

func (x *GenerateQueriesResponse) GetQueries() []*GeneratedQuery {
	if x != nil {
		return x.Queries
	}
	return nil
}

var File_querygen_proto protoreflect.FileDescriptor

const file_querygen_proto_rawDesc = "" +
	"\n" +
	"\x0equerygen.proto\x12\vquerygen.v1\"\xdd\x01\n" +
	"\x16GenerateQueriesRequest\x12!\n" +
	"\fcompany_name\x18\x01 \x01(\tR\vcompanyName\x12\x16\n" +
	"\x06domain\x18\x02 \x01(\tR\x06domain\x12\x1a\n" +
	"\bindustry\x18\x03 \x01(\tR\bindustry\x12 \n" +
	"\vcompetitors\x18\x04 \x03(\tR\vcompetitors\x12\x18\n" +
	"\aaliases\x18\x05 \x03(\tR\aaliases\x120\n" +
	"\x14queries_per_category\x18\x06 \x01(\x05R\x12queriesPerCategory\"\x81\x02\n" +
	"\x0eGeneratedQuery\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x12\x16\n" +
	"\x06intent\x18\x04 \x01(\tR\x06intent\x12\x1e\n" +
	"\n" +
	"difficulty\x18\x05 \x01(\x05R\n" +
	"difficulty\x12\x1a\n" +
	"\bpriority\x18\x06 \x01(\tR\bpriority\x122\n" +
	"\x15monthly_search_volume\x18\a \x01(\x05R\x13monthlySearchVolume\x12!\n" +
	"\fai_relevance\x18\b \x01(\x05R\vaiRelevance\"P\n" +
	"\x17GenerateQueriesResponse\x125\n" +
	"\aqueries\x18\x01 \x03(\v2\x1b.querygen.v1.GeneratedQueryR\aqueries2o\n" +
	"\x0fQueryGenService\x12\\\n" +
	"\x0fGenerateQueries\x12#.querygen.v1.GenerateQueriesRequest\x1a$.querygen.v1.GenerateQueriesResponseB&Z$github.com/brandlens/brandlens/protob\x06proto3"

var (
	file_querygen_proto_rawDescOnce sync.Once
	file_querygen_proto_rawDescData []byte
)

func file_querygen_proto_rawDescGZIP() []byte {
	file_querygen_proto_rawDescOnce.Do(func() {
		file_querygen_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_querygen_proto_rawDesc), len(file_querygen_proto_rawDesc)))
	})
	return file_querygen_proto_rawDescData
}

var file_querygen_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_querygen_proto_goTypes = []any{
	(*GenerateQueriesRequest)(nil),  // 0: querygen.v1.GenerateQueriesRequest
	(*GeneratedQuery)(nil),          // 1: querygen.v1.GeneratedQuery
	(*GenerateQueriesResponse)(nil), // 2: querygen.v1.GenerateQueriesResponse
}
var file_querygen_proto_depIdxs = []int32{
	1, // 0: querygen.v1.GenerateQueriesResponse.queries:type_name -> querygen.v1.GeneratedQuery
	0, // 1: querygen.v1.QueryGenService.GenerateQueries:input_type -> querygen.v1.GenerateQueriesRequest
	2, // 2: querygen.v1.QueryGenService.GenerateQueries:output_type -> querygen.v1.GenerateQueriesResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_querygen_proto_init() }
func file_querygen_proto_init() {
	if File_querygen_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_querygen_proto_rawDesc), len(file_querygen_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_querygen_proto_goTypes,
		DependencyIndexes: file_querygen_proto_depIdxs,
		MessageInfos:      file_querygen_proto_msgTypes,
	}.Build()
	File_querygen_proto = out.File
	file_querygen_proto_goTypes = nil
	file_querygen_proto_depIdxs = nil
}
