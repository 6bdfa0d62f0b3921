package adapter

// aidLedgerABI is the JSON interface descriptor of the aid ledger contract.
// Encrypted values (euint32/euint64 and their external input forms) travel
// as bytes32 handles at the ABI level; validity proofs travel as bytes.
const aidLedgerABI = `[
  {"type":"function","name":"applicationCount","stateMutability":"view",
   "inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getApplicationInfo","stateMutability":"view",
   "inputs":[{"name":"applicationId","type":"uint256"}],
   "outputs":[
     {"name":"applicant","type":"address"},
     {"name":"publicAmount","type":"uint256"},
     {"name":"timestamp","type":"uint256"},
     {"name":"status","type":"uint8"},
     {"name":"donatedAmount","type":"uint256"}]},
  {"type":"function","name":"getEncryptedIdentityHash","stateMutability":"view",
   "inputs":[{"name":"applicationId","type":"uint256"}],
   "outputs":[{"name":"","type":"bytes32"}]},
  {"type":"function","name":"getEncryptedReasonHash","stateMutability":"view",
   "inputs":[{"name":"applicationId","type":"uint256"}],
   "outputs":[{"name":"","type":"bytes32"}]},
  {"type":"function","name":"getEncryptedAmount","stateMutability":"view",
   "inputs":[{"name":"applicationId","type":"uint256"}],
   "outputs":[{"name":"","type":"bytes32"}]},
  {"type":"function","name":"getApplicantApplications","stateMutability":"view",
   "inputs":[{"name":"applicant","type":"address"}],
   "outputs":[{"name":"","type":"uint256[]"}]},
  {"type":"function","name":"getVerifier","stateMutability":"view",
   "inputs":[{"name":"applicationId","type":"uint256"}],
   "outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"protocolId","stateMutability":"pure",
   "inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"submitApplication","stateMutability":"nonpayable",
   "inputs":[
     {"name":"encryptedIdentityHash","type":"bytes32"},
     {"name":"identityProof","type":"bytes"},
     {"name":"encryptedReasonHash","type":"bytes32"},
     {"name":"reasonProof","type":"bytes"},
     {"name":"encryptedAmount","type":"bytes32"},
     {"name":"amountProof","type":"bytes"},
     {"name":"publicAmount","type":"uint256"}],
   "outputs":[]},
  {"type":"function","name":"verifyApplication","stateMutability":"nonpayable",
   "inputs":[
     {"name":"applicationId","type":"uint256"},
     {"name":"approved","type":"bool"}],
   "outputs":[]},
  {"type":"function","name":"donate","stateMutability":"payable",
   "inputs":[{"name":"applicationId","type":"uint256"}],
   "outputs":[]},
  {"type":"event","name":"ApplicationSubmitted","anonymous":false,
   "inputs":[
     {"name":"applicationId","type":"uint256","indexed":true},
     {"name":"applicant","type":"address","indexed":true},
     {"name":"publicAmount","type":"uint256","indexed":false},
     {"name":"timestamp","type":"uint256","indexed":false}]},
  {"type":"event","name":"ApplicationVerified","anonymous":false,
   "inputs":[
     {"name":"applicationId","type":"uint256","indexed":true},
     {"name":"verifier","type":"address","indexed":true},
     {"name":"approved","type":"bool","indexed":false}]},
  {"type":"event","name":"DonationMade","anonymous":false,
   "inputs":[
     {"name":"applicationId","type":"uint256","indexed":true},
     {"name":"donor","type":"address","indexed":true},
     {"name":"amount","type":"uint256","indexed":false}]}
]`
