// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: matcher/v1/matcher.proto

package matcherv1

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

type Job struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobUid          string                 `protobuf:"bytes,2,opt,name=job_uid,json=jobUid,proto3" json:"job_uid,omitempty"`
	Source          string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	Title           string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Description     string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	CompanyName     string                 `protobuf:"bytes,6,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	BrokerName      string                 `protobuf:"bytes,7,opt,name=broker_name,json=brokerName,proto3" json:"broker_name,omitempty"`
	Skills          []string               `protobuf:"bytes,8,rep,name=skills,proto3" json:"skills,omitempty"`
	Role            string                 `protobuf:"bytes,9,opt,name=role,proto3" json:"role,omitempty"`
	Seniority       string                 `protobuf:"bytes,10,opt,name=seniority,proto3" json:"seniority,omitempty"`
	Languages       []string               `protobuf:"bytes,11,rep,name=languages,proto3" json:"languages,omitempty"`
	LocationCity    string                 `protobuf:"bytes,12,opt,name=location_city,json=locationCity,proto3" json:"location_city,omitempty"`
	LocationCountry string                 `protobuf:"bytes,13,opt,name=location_country,json=locationCountry,proto3" json:"location_country,omitempty"`
	OnsiteMode      string                 `protobuf:"bytes,14,opt,name=onsite_mode,json=onsiteMode,proto3" json:"onsite_mode,omitempty"`
	Duration        string                 `protobuf:"bytes,15,opt,name=duration,proto3" json:"duration,omitempty"`
	StartDate       string                 `protobuf:"bytes,16,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	Url             string                 `protobuf:"bytes,17,opt,name=url,proto3" json:"url,omitempty"`
	PostedAt        string                 `protobuf:"bytes,18,opt,name=posted_at,json=postedAt,proto3" json:"posted_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetJobUid() string {
	if x != nil {
		return x.JobUid
	}
	return ""
}

func (x *Job) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Job) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Job) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Job) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *Job) GetBrokerName() string {
	if x != nil {
		return x.BrokerName
	}
	return ""
}

func (x *Job) GetSkills() []string {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *Job) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Job) GetSeniority() string {
	if x != nil {
		return x.Seniority
	}
	return ""
}

func (x *Job) GetLanguages() []string {
	if x != nil {
		return x.Languages
	}
	return nil
}

func (x *Job) GetLocationCity() string {
	if x != nil {
		return x.LocationCity
	}
	return ""
}

func (x *Job) GetLocationCountry() string {
	if x != nil {
		return x.LocationCountry
	}
	return ""
}

func (x *Job) GetOnsiteMode() string {
	if x != nil {
		return x.OnsiteMode
	}
	return ""
}

func (x *Job) GetDuration() string {
	if x != nil {
		return x.Duration
	}
	return ""
}

func (x *Job) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *Job) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Job) GetPostedAt() string {
	if x != nil {
		return x.PostedAt
	}
	return ""
}

type Candidate struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name             string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Role             string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	Seniority        string                 `protobuf:"bytes,4,opt,name=seniority,proto3" json:"seniority,omitempty"`
	Skills           []string               `protobuf:"bytes,5,rep,name=skills,proto3" json:"skills,omitempty"`
	Languages        []string               `protobuf:"bytes,6,rep,name=languages,proto3" json:"languages,omitempty"`
	LocationCity     string                 `protobuf:"bytes,7,opt,name=location_city,json=locationCity,proto3" json:"location_city,omitempty"`
	LocationCountry  string                 `protobuf:"bytes,8,opt,name=location_country,json=locationCountry,proto3" json:"location_country,omitempty"`
	OnsiteMode       string                 `protobuf:"bytes,9,opt,name=onsite_mode,json=onsiteMode,proto3" json:"onsite_mode,omitempty"`
	AvailabilityFrom string                 `protobuf:"bytes,10,opt,name=availability_from,json=availabilityFrom,proto3" json:"availability_from,omitempty"`
	Notes            string                 `protobuf:"bytes,11,opt,name=notes,proto3" json:"notes,omitempty"`
	ProfileUrl       string                 `protobuf:"bytes,12,opt,name=profile_url,json=profileUrl,proto3" json:"profile_url,omitempty"`
	Active           bool                   `protobuf:"varint,13,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Candidate) Reset() {
	*x = Candidate{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Candidate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Candidate) ProtoMessage() {}

func (x *Candidate) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Candidate.ProtoReflect.Descriptor instead.
func (*Candidate) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{1}
}

func (x *Candidate) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Candidate) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Candidate) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Candidate) GetSeniority() string {
	if x != nil {
		return x.Seniority
	}
	return ""
}

func (x *Candidate) GetSkills() []string {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *Candidate) GetLanguages() []string {
	if x != nil {
		return x.Languages
	}
	return nil
}

func (x *Candidate) GetLocationCity() string {
	if x != nil {
		return x.LocationCity
	}
	return ""
}

func (x *Candidate) GetLocationCountry() string {
	if x != nil {
		return x.LocationCountry
	}
	return ""
}

func (x *Candidate) GetOnsiteMode() string {
	if x != nil {
		return x.OnsiteMode
	}
	return ""
}

func (x *Candidate) GetAvailabilityFrom() string {
	if x != nil {
		return x.AvailabilityFrom
	}
	return ""
}

func (x *Candidate) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Candidate) GetProfileUrl() string {
	if x != nil {
		return x.ProfileUrl
	}
	return ""
}

func (x *Candidate) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type FactorScore struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Available     bool                   `protobuf:"varint,2,opt,name=available,proto3" json:"available,omitempty"`
	Score         float64                `protobuf:"fixed64,3,opt,name=score,proto3" json:"score,omitempty"`
	Weight        float64                `protobuf:"fixed64,4,opt,name=weight,proto3" json:"weight,omitempty"`
	Weighted      float64                `protobuf:"fixed64,5,opt,name=weighted,proto3" json:"weighted,omitempty"`
	Note          string                 `protobuf:"bytes,6,opt,name=note,proto3" json:"note,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FactorScore) Reset() {
	*x = FactorScore{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FactorScore) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FactorScore) ProtoMessage() {}

func (x *FactorScore) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FactorScore.ProtoReflect.Descriptor instead.
func (*FactorScore) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{2}
}

func (x *FactorScore) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *FactorScore) GetAvailable() bool {
	if x != nil {
		return x.Available
	}
	return false
}

func (x *FactorScore) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *FactorScore) GetWeight() float64 {
	if x != nil {
		return x.Weight
	}
	return 0
}

func (x *FactorScore) GetWeighted() float64 {
	if x != nil {
		return x.Weighted
	}
	return 0
}

func (x *FactorScore) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

type Breakdown struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       string                 `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	Total         float64                `protobuf:"fixed64,2,opt,name=total,proto3" json:"total,omitempty"`
	Factors       []*FactorScore         `protobuf:"bytes,3,rep,name=factors,proto3" json:"factors,omitempty"`
	Redistributed bool                   `protobuf:"varint,4,opt,name=redistributed,proto3" json:"redistributed,omitempty"`
	SkillsMatched []string               `protobuf:"bytes,5,rep,name=skills_matched,json=skillsMatched,proto3" json:"skills_matched,omitempty"`
	SkillsMissing []string               `protobuf:"bytes,6,rep,name=skills_missing,json=skillsMissing,proto3" json:"skills_missing,omitempty"`
	Strengths     []string               `protobuf:"bytes,7,rep,name=strengths,proto3" json:"strengths,omitempty"`
	Concerns      []string               `protobuf:"bytes,8,rep,name=concerns,proto3" json:"concerns,omitempty"`
	Summary       string                 `protobuf:"bytes,9,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Breakdown) Reset() {
	*x = Breakdown{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Breakdown) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Breakdown) ProtoMessage() {}

func (x *Breakdown) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Breakdown.ProtoReflect.Descriptor instead.
func (*Breakdown) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{3}
}

func (x *Breakdown) GetProfile() string {
	if x != nil {
		return x.Profile
	}
	return ""
}

func (x *Breakdown) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *Breakdown) GetFactors() []*FactorScore {
	if x != nil {
		return x.Factors
	}
	return nil
}

func (x *Breakdown) GetRedistributed() bool {
	if x != nil {
		return x.Redistributed
	}
	return false
}

func (x *Breakdown) GetSkillsMatched() []string {
	if x != nil {
		return x.SkillsMatched
	}
	return nil
}

func (x *Breakdown) GetSkillsMissing() []string {
	if x != nil {
		return x.SkillsMissing
	}
	return nil
}

func (x *Breakdown) GetStrengths() []string {
	if x != nil {
		return x.Strengths
	}
	return nil
}

func (x *Breakdown) GetConcerns() []string {
	if x != nil {
		return x.Concerns
	}
	return nil
}

func (x *Breakdown) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

type Match struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	CandidateId   string                 `protobuf:"bytes,3,opt,name=candidate_id,json=candidateId,proto3" json:"candidate_id,omitempty"`
	Score         float64                `protobuf:"fixed64,4,opt,name=score,proto3" json:"score,omitempty"`
	Reasoning     *Breakdown             `protobuf:"bytes,5,opt,name=reasoning,proto3" json:"reasoning,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Match) Reset() {
	*x = Match{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Match) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Match) ProtoMessage() {}

func (x *Match) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Match.ProtoReflect.Descriptor instead.
func (*Match) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{4}
}

func (x *Match) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Match) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Match) GetCandidateId() string {
	if x != nil {
		return x.CandidateId
	}
	return ""
}

func (x *Match) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *Match) GetReasoning() *Breakdown {
	if x != nil {
		return x.Reasoning
	}
	return nil
}

func (x *Match) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type IngestJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestJobRequest) Reset() {
	*x = IngestJobRequest{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestJobRequest) ProtoMessage() {}

func (x *IngestJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestJobRequest.ProtoReflect.Descriptor instead.
func (*IngestJobRequest) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{5}
}

func (x *IngestJobRequest) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type IngestJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestJobResponse) Reset() {
	*x = IngestJobResponse{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestJobResponse) ProtoMessage() {}

func (x *IngestJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestJobResponse.ProtoReflect.Descriptor instead.
func (*IngestJobResponse) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{6}
}

func (x *IngestJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type IngestCandidateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Candidate     *Candidate             `protobuf:"bytes,1,opt,name=candidate,proto3" json:"candidate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestCandidateRequest) Reset() {
	*x = IngestCandidateRequest{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestCandidateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestCandidateRequest) ProtoMessage() {}

func (x *IngestCandidateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestCandidateRequest.ProtoReflect.Descriptor instead.
func (*IngestCandidateRequest) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{7}
}

func (x *IngestCandidateRequest) GetCandidate() *Candidate {
	if x != nil {
		return x.Candidate
	}
	return nil
}

type IngestCandidateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Candidate     *Candidate             `protobuf:"bytes,1,opt,name=candidate,proto3" json:"candidate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestCandidateResponse) Reset() {
	*x = IngestCandidateResponse{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestCandidateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestCandidateResponse) ProtoMessage() {}

func (x *IngestCandidateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestCandidateResponse.ProtoReflect.Descriptor instead.
func (*IngestCandidateResponse) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{8}
}

func (x *IngestCandidateResponse) GetCandidate() *Candidate {
	if x != nil {
		return x.Candidate
	}
	return nil
}

type RunMatchingRequest struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	JobIds       []string               `protobuf:"bytes,1,rep,name=job_ids,json=jobIds,proto3" json:"job_ids,omitempty"`
	CandidateIds []string               `protobuf:"bytes,2,rep,name=candidate_ids,json=candidateIds,proto3" json:"candidate_ids,omitempty"`
	MinScore     float64                `protobuf:"fixed64,3,opt,name=min_score,json=minScore,proto3" json:"min_score,omitempty"`
	MaxResults   int32                  `protobuf:"varint,4,opt,name=max_results,json=maxResults,proto3" json:"max_results,omitempty"`
	Profile      string                 `protobuf:"bytes,5,opt,name=profile,proto3" json:"profile,omitempty"`
	// Named hard-filter set from configuration. Ignored when the explicit
	// filter fields below are set.
	Filter            string   `protobuf:"bytes,6,opt,name=filter,proto3" json:"filter,omitempty"`
	MinSeniorityTier  int32    `protobuf:"varint,7,opt,name=min_seniority_tier,json=minSeniorityTier,proto3" json:"min_seniority_tier,omitempty"`
	RequiredSkills    []string `protobuf:"bytes,8,rep,name=required_skills,json=requiredSkills,proto3" json:"required_skills,omitempty"`
	RequiredLanguages []string `protobuf:"bytes,9,rep,name=required_languages,json=requiredLanguages,proto3" json:"required_languages,omitempty"`
	Locations         []string `protobuf:"bytes,10,rep,name=locations,proto3" json:"locations,omitempty"`
	OnsiteModes       []string `protobuf:"bytes,11,rep,name=onsite_modes,json=onsiteModes,proto3" json:"onsite_modes,omitempty"`
	Roles             []string `protobuf:"bytes,12,rep,name=roles,proto3" json:"roles,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *RunMatchingRequest) Reset() {
	*x = RunMatchingRequest{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunMatchingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunMatchingRequest) ProtoMessage() {}

func (x *RunMatchingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunMatchingRequest.ProtoReflect.Descriptor instead.
func (*RunMatchingRequest) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{9}
}

func (x *RunMatchingRequest) GetJobIds() []string {
	if x != nil {
		return x.JobIds
	}
	return nil
}

func (x *RunMatchingRequest) GetCandidateIds() []string {
	if x != nil {
		return x.CandidateIds
	}
	return nil
}

func (x *RunMatchingRequest) GetMinScore() float64 {
	if x != nil {
		return x.MinScore
	}
	return 0
}

func (x *RunMatchingRequest) GetMaxResults() int32 {
	if x != nil {
		return x.MaxResults
	}
	return 0
}

func (x *RunMatchingRequest) GetProfile() string {
	if x != nil {
		return x.Profile
	}
	return ""
}

func (x *RunMatchingRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

func (x *RunMatchingRequest) GetMinSeniorityTier() int32 {
	if x != nil {
		return x.MinSeniorityTier
	}
	return 0
}

func (x *RunMatchingRequest) GetRequiredSkills() []string {
	if x != nil {
		return x.RequiredSkills
	}
	return nil
}

func (x *RunMatchingRequest) GetRequiredLanguages() []string {
	if x != nil {
		return x.RequiredLanguages
	}
	return nil
}

func (x *RunMatchingRequest) GetLocations() []string {
	if x != nil {
		return x.Locations
	}
	return nil
}

func (x *RunMatchingRequest) GetOnsiteModes() []string {
	if x != nil {
		return x.OnsiteModes
	}
	return nil
}

func (x *RunMatchingRequest) GetRoles() []string {
	if x != nil {
		return x.Roles
	}
	return nil
}

type RunMatchingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Matches       []*Match               `protobuf:"bytes,1,rep,name=matches,proto3" json:"matches,omitempty"`
	Scored        int32                  `protobuf:"varint,2,opt,name=scored,proto3" json:"scored,omitempty"`
	Stored        int32                  `protobuf:"varint,3,opt,name=stored,proto3" json:"stored,omitempty"`
	Failed        int32                  `protobuf:"varint,4,opt,name=failed,proto3" json:"failed,omitempty"`
	Excluded      int32                  `protobuf:"varint,5,opt,name=excluded,proto3" json:"excluded,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunMatchingResponse) Reset() {
	*x = RunMatchingResponse{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunMatchingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunMatchingResponse) ProtoMessage() {}

func (x *RunMatchingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunMatchingResponse.ProtoReflect.Descriptor instead.
func (*RunMatchingResponse) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{10}
}

func (x *RunMatchingResponse) GetMatches() []*Match {
	if x != nil {
		return x.Matches
	}
	return nil
}

func (x *RunMatchingResponse) GetScored() int32 {
	if x != nil {
		return x.Scored
	}
	return 0
}

func (x *RunMatchingResponse) GetStored() int32 {
	if x != nil {
		return x.Stored
	}
	return 0
}

func (x *RunMatchingResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *RunMatchingResponse) GetExcluded() int32 {
	if x != nil {
		return x.Excluded
	}
	return 0
}

type ListMatchesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	CandidateId   string                 `protobuf:"bytes,2,opt,name=candidate_id,json=candidateId,proto3" json:"candidate_id,omitempty"`
	MinScore      float64                `protobuf:"fixed64,3,opt,name=min_score,json=minScore,proto3" json:"min_score,omitempty"`
	MaxResults    int32                  `protobuf:"varint,4,opt,name=max_results,json=maxResults,proto3" json:"max_results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMatchesRequest) Reset() {
	*x = ListMatchesRequest{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchesRequest) ProtoMessage() {}

func (x *ListMatchesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchesRequest.ProtoReflect.Descriptor instead.
func (*ListMatchesRequest) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{11}
}

func (x *ListMatchesRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ListMatchesRequest) GetCandidateId() string {
	if x != nil {
		return x.CandidateId
	}
	return ""
}

func (x *ListMatchesRequest) GetMinScore() float64 {
	if x != nil {
		return x.MinScore
	}
	return 0
}

func (x *ListMatchesRequest) GetMaxResults() int32 {
	if x != nil {
		return x.MaxResults
	}
	return 0
}

type ListMatchesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Matches       []*Match               `protobuf:"bytes,1,rep,name=matches,proto3" json:"matches,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMatchesResponse) Reset() {
	*x = ListMatchesResponse{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchesResponse) ProtoMessage() {}

func (x *ListMatchesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchesResponse.ProtoReflect.Descriptor instead.
func (*ListMatchesResponse) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{12}
}

func (x *ListMatchesResponse) GetMatches() []*Match {
	if x != nil {
		return x.Matches
	}
	return nil
}

type ResolveOrganizationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveOrganizationRequest) Reset() {
	*x = ResolveOrganizationRequest{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveOrganizationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveOrganizationRequest) ProtoMessage() {}

func (x *ResolveOrganizationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveOrganizationRequest.ProtoReflect.Descriptor instead.
func (*ResolveOrganizationRequest) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{13}
}

func (x *ResolveOrganizationRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ResolveOrganizationRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ResolveOrganizationResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	NormalizedName string                 `protobuf:"bytes,2,opt,name=normalized_name,json=normalizedName,proto3" json:"normalized_name,omitempty"`
	Aliases        []string               `protobuf:"bytes,3,rep,name=aliases,proto3" json:"aliases,omitempty"`
	NeedsReview    bool                   `protobuf:"varint,4,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ResolveOrganizationResponse) Reset() {
	*x = ResolveOrganizationResponse{}
	mi := &file_matcher_v1_matcher_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveOrganizationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveOrganizationResponse) ProtoMessage() {}

func (x *ResolveOrganizationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_matcher_v1_matcher_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveOrganizationResponse.ProtoReflect.Descriptor instead.
func (*ResolveOrganizationResponse) Descriptor() ([]byte, []int) {
	return file_matcher_v1_matcher_proto_rawDescGZIP(), []int{14}
}

func (x *ResolveOrganizationResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ResolveOrganizationResponse) GetNormalizedName() string {
	if x != nil {
		return x.NormalizedName
	}
	return ""
}

func (x *ResolveOrganizationResponse) GetAliases() []string {
	if x != nil {
		return x.Aliases
	}
	return nil
}

func (x *ResolveOrganizationResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

var File_matcher_v1_matcher_proto protoreflect.FileDescriptor

const file_matcher_v1_matcher_proto_rawDesc = "" +
	"\n" +
	"\x18matcher/v1/matcher.proto\x12\n" +
	"matcher.v1\"\x85\x04\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\ajob_uid\x18\x02 \x01(\tR\x06jobUid\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12!\n" +
	"\fcompany_name\x18\x06 \x01(\tR\vcompanyName\x12\x1f\n" +
	"\vbroker_name\x18\a \x01(\tR\n" +
	"brokerName\x12\x16\n" +
	"\x06skills\x18\b \x03(\tR\x06skills\x12\x12\n" +
	"\x04role\x18\t \x01(\tR\x04role\x12\x1c\n" +
	"\tseniority\x18\n" +
	" \x01(\tR\tseniority\x12\x1c\n" +
	"\tlanguages\x18\v \x03(\tR\tlanguages\x12#\n" +
	"\rlocation_city\x18\f \x01(\tR\flocationCity\x12)\n" +
	"\x10location_country\x18\r \x01(\tR\x0flocationCountry\x12\x1f\n" +
	"\vonsite_mode\x18\x0e \x01(\tR\n" +
	"onsiteMode\x12\x1a\n" +
	"\bduration\x18\x0f \x01(\tR\bduration\x12\x1d\n" +
	"\n" +
	"start_date\x18\x10 \x01(\tR\tstartDate\x12\x10\n" +
	"\x03url\x18\x11 \x01(\tR\x03url\x12\x1b\n" +
	"\tposted_at\x18\x12 \x01(\tR\bpostedAt\"\x84\x03\n" +
	"\tCandidate\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\x12\x1c\n" +
	"\tseniority\x18\x04 \x01(\tR\tseniority\x12\x16\n" +
	"\x06skills\x18\x05 \x03(\tR\x06skills\x12\x1c\n" +
	"\tlanguages\x18\x06 \x03(\tR\tlanguages\x12#\n" +
	"\rlocation_city\x18\a \x01(\tR\flocationCity\x12)\n" +
	"\x10location_country\x18\b \x01(\tR\x0flocationCountry\x12\x1f\n" +
	"\vonsite_mode\x18\t \x01(\tR\n" +
	"onsiteMode\x12+\n" +
	"\x11availability_from\x18\n" +
	" \x01(\tR\x10availabilityFrom\x12\x14\n" +
	"\x05notes\x18\v \x01(\tR\x05notes\x12\x1f\n" +
	"\vprofile_url\x18\f \x01(\tR\n" +
	"profileUrl\x12\x16\n" +
	"\x06active\x18\r \x01(\bR\x06active\"\x9d\x01\n" +
	"\vFactorScore\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1c\n" +
	"\tavailable\x18\x02 \x01(\bR\tavailable\x12\x14\n" +
	"\x05score\x18\x03 \x01(\x01R\x05score\x12\x16\n" +
	"\x06weight\x18\x04 \x01(\x01R\x06weight\x12\x1a\n" +
	"\bweighted\x18\x05 \x01(\x01R\bweighted\x12\x12\n" +
	"\x04note\x18\x06 \x01(\tR\x04note\"\xb6\x02\n" +
	"\tBreakdown\x12\x18\n" +
	"\aprofile\x18\x01 \x01(\tR\aprofile\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x01R\x05total\x121\n" +
	"\afactors\x18\x03 \x03(\v2\x17.matcher.v1.FactorScoreR\afactors\x12$\n" +
	"\rredistributed\x18\x04 \x01(\bR\rredistributed\x12%\n" +
	"\x0eskills_matched\x18\x05 \x03(\tR\rskillsMatched\x12%\n" +
	"\x0eskills_missing\x18\x06 \x03(\tR\rskillsMissing\x12\x1c\n" +
	"\tstrengths\x18\a \x03(\tR\tstrengths\x12\x1a\n" +
	"\bconcerns\x18\b \x03(\tR\bconcerns\x12\x18\n" +
	"\asummary\x18\t \x01(\tR\asummary\"\xbb\x01\n" +
	"\x05Match\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12!\n" +
	"\fcandidate_id\x18\x03 \x01(\tR\vcandidateId\x12\x14\n" +
	"\x05score\x18\x04 \x01(\x01R\x05score\x123\n" +
	"\treasoning\x18\x05 \x01(\v2\x15.matcher.v1.BreakdownR\treasoning\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"5\n" +
	"\x10IngestJobRequest\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.matcher.v1.JobR\x03job\"6\n" +
	"\x11IngestJobResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.matcher.v1.JobR\x03job\"M\n" +
	"\x16IngestCandidateRequest\x123\n" +
	"\tcandidate\x18\x01 \x01(\v2\x15.matcher.v1.CandidateR\tcandidate\"N\n" +
	"\x17IngestCandidateResponse\x123\n" +
	"\tcandidate\x18\x01 \x01(\v2\x15.matcher.v1.CandidateR\tcandidate\"\x9f\x03\n" +
	"\x12RunMatchingRequest\x12\x17\n" +
	"\ajob_ids\x18\x01 \x03(\tR\x06jobIds\x12#\n" +
	"\rcandidate_ids\x18\x02 \x03(\tR\fcandidateIds\x12\x1b\n" +
	"\tmin_score\x18\x03 \x01(\x01R\bminScore\x12\x1f\n" +
	"\vmax_results\x18\x04 \x01(\x05R\n" +
	"maxResults\x12\x18\n" +
	"\aprofile\x18\x05 \x01(\tR\aprofile\x12\x16\n" +
	"\x06filter\x18\x06 \x01(\tR\x06filter\x12,\n" +
	"\x12min_seniority_tier\x18\a \x01(\x05R\x10minSeniorityTier\x12'\n" +
	"\x0frequired_skills\x18\b \x03(\tR\x0erequiredSkills\x12-\n" +
	"\x12required_languages\x18\t \x03(\tR\x11requiredLanguages\x12\x1c\n" +
	"\tlocations\x18\n" +
	" \x03(\tR\tlocations\x12!\n" +
	"\fonsite_modes\x18\v \x03(\tR\vonsiteModes\x12\x14\n" +
	"\x05roles\x18\f \x03(\tR\x05roles\"\xa6\x01\n" +
	"\x13RunMatchingResponse\x12+\n" +
	"\amatches\x18\x01 \x03(\v2\x11.matcher.v1.MatchR\amatches\x12\x16\n" +
	"\x06scored\x18\x02 \x01(\x05R\x06scored\x12\x16\n" +
	"\x06stored\x18\x03 \x01(\x05R\x06stored\x12\x16\n" +
	"\x06failed\x18\x04 \x01(\x05R\x06failed\x12\x1a\n" +
	"\bexcluded\x18\x05 \x01(\x05R\bexcluded\"\x8c\x01\n" +
	"\x12ListMatchesRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12!\n" +
	"\fcandidate_id\x18\x02 \x01(\tR\vcandidateId\x12\x1b\n" +
	"\tmin_score\x18\x03 \x01(\x01R\bminScore\x12\x1f\n" +
	"\vmax_results\x18\x04 \x01(\x05R\n" +
	"maxResults\"B\n" +
	"\x13ListMatchesResponse\x12+\n" +
	"\amatches\x18\x01 \x03(\v2\x11.matcher.v1.MatchR\amatches\"D\n" +
	"\x1aResolveOrganizationRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"\x93\x01\n" +
	"\x1bResolveOrganizationResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0fnormalized_name\x18\x02 \x01(\tR\x0enormalizedName\x12\x18\n" +
	"\aaliases\x18\x03 \x03(\tR\aaliases\x12!\n" +
	"\fneeds_review\x18\x04 \x01(\bR\vneedsReview2\xbe\x03\n" +
	"\x0eMatcherService\x12H\n" +
	"\tIngestJob\x12\x1c.matcher.v1.IngestJobRequest\x1a\x1d.matcher.v1.IngestJobResponse\x12Z\n" +
	"\x0fIngestCandidate\x12\".matcher.v1.IngestCandidateRequest\x1a#.matcher.v1.IngestCandidateResponse\x12N\n" +
	"\vRunMatching\x12\x1e.matcher.v1.RunMatchingRequest\x1a\x1f.matcher.v1.RunMatchingResponse\x12N\n" +
	"\vListMatches\x12\x1e.matcher.v1.ListMatchesRequest\x1a\x1f.matcher.v1.ListMatchesResponse\x12f\n" +
	"\x13ResolveOrganization\x12&.matcher.v1.ResolveOrganizationRequest\x1a'.matcher.v1.ResolveOrganizationResponseBBZ@github.com/nordstaff/consultant-matcher/gen/matcher/v1;matcherv1b\x06proto3"

var (
	file_matcher_v1_matcher_proto_rawDescOnce sync.Once
	file_matcher_v1_matcher_proto_rawDescData []byte
)

func file_matcher_v1_matcher_proto_rawDescGZIP() []byte {
	file_matcher_v1_matcher_proto_rawDescOnce.Do(func() {
		file_matcher_v1_matcher_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_matcher_v1_matcher_proto_rawDesc), len(file_matcher_v1_matcher_proto_rawDesc)))
	})
	return file_matcher_v1_matcher_proto_rawDescData
}

var file_matcher_v1_matcher_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_matcher_v1_matcher_proto_goTypes = []any{
	(*Job)(nil),                         // 0: matcher.v1.Job
	(*Candidate)(nil),                   // 1: matcher.v1.Candidate
	(*FactorScore)(nil),                 // 2: matcher.v1.FactorScore
	(*Breakdown)(nil),                   // 3: matcher.v1.Breakdown
	(*Match)(nil),                       // 4: matcher.v1.Match
	(*IngestJobRequest)(nil),            // 5: matcher.v1.IngestJobRequest
	(*IngestJobResponse)(nil),           // 6: matcher.v1.IngestJobResponse
	(*IngestCandidateRequest)(nil),      // 7: matcher.v1.IngestCandidateRequest
	(*IngestCandidateResponse)(nil),     // 8: matcher.v1.IngestCandidateResponse
	(*RunMatchingRequest)(nil),          // 9: matcher.v1.RunMatchingRequest
	(*RunMatchingResponse)(nil),         // 10: matcher.v1.RunMatchingResponse
	(*ListMatchesRequest)(nil),          // 11: matcher.v1.ListMatchesRequest
	(*ListMatchesResponse)(nil),         // 12: matcher.v1.ListMatchesResponse
	(*ResolveOrganizationRequest)(nil),  // 13: matcher.v1.ResolveOrganizationRequest
	(*ResolveOrganizationResponse)(nil), // 14: matcher.v1.ResolveOrganizationResponse
}
var file_matcher_v1_matcher_proto_depIdxs = []int32{
	2,  // 0: matcher.v1.Breakdown.factors:type_name -> matcher.v1.FactorScore
	3,  // 1: matcher.v1.Match.reasoning:type_name -> matcher.v1.Breakdown
	0,  // 2: matcher.v1.IngestJobRequest.job:type_name -> matcher.v1.Job
	0,  // 3: matcher.v1.IngestJobResponse.job:type_name -> matcher.v1.Job
	1,  // 4: matcher.v1.IngestCandidateRequest.candidate:type_name -> matcher.v1.Candidate
	1,  // 5: matcher.v1.IngestCandidateResponse.candidate:type_name -> matcher.v1.Candidate
	4,  // 6: matcher.v1.RunMatchingResponse.matches:type_name -> matcher.v1.Match
	4,  // 7: matcher.v1.ListMatchesResponse.matches:type_name -> matcher.v1.Match
	5,  // 8: matcher.v1.MatcherService.IngestJob:input_type -> matcher.v1.IngestJobRequest
	7,  // 9: matcher.v1.MatcherService.IngestCandidate:input_type -> matcher.v1.IngestCandidateRequest
	9,  // 10: matcher.v1.MatcherService.RunMatching:input_type -> matcher.v1.RunMatchingRequest
	11, // 11: matcher.v1.MatcherService.ListMatches:input_type -> matcher.v1.ListMatchesRequest
	13, // 12: matcher.v1.MatcherService.ResolveOrganization:input_type -> matcher.v1.ResolveOrganizationRequest
	6,  // 13: matcher.v1.MatcherService.IngestJob:output_type -> matcher.v1.IngestJobResponse
	8,  // 14: matcher.v1.MatcherService.IngestCandidate:output_type -> matcher.v1.IngestCandidateResponse
	10, // 15: matcher.v1.MatcherService.RunMatching:output_type -> matcher.v1.RunMatchingResponse
	12, // 16: matcher.v1.MatcherService.ListMatches:output_type -> matcher.v1.ListMatchesResponse
	14, // 17: matcher.v1.MatcherService.ResolveOrganization:output_type -> matcher.v1.ResolveOrganizationResponse
	13, // [13:18] is the sub-list for method output_type
	8,  // [8:13] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_matcher_v1_matcher_proto_init() }
func file_matcher_v1_matcher_proto_init() {
	if File_matcher_v1_matcher_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_matcher_v1_matcher_proto_rawDesc), len(file_matcher_v1_matcher_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_matcher_v1_matcher_proto_goTypes,
		DependencyIndexes: file_matcher_v1_matcher_proto_depIdxs,
		MessageInfos:      file_matcher_v1_matcher_proto_msgTypes,
	}.Build()
	File_matcher_v1_matcher_proto = out.File
	file_matcher_v1_matcher_proto_goTypes = nil
	file_matcher_v1_matcher_proto_depIdxs = nil
}
